package db

// Product is one row of the products table.
//
//	CREATE TABLE products (
//	    id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//	    name        TEXT             NOT NULL DEFAULT '',
//	    description TEXT             NOT NULL DEFAULT '',
//	    price       DOUBLE PRECISION NOT NULL DEFAULT 0,
//	    quantity    INTEGER          NOT NULL DEFAULT 0
//	);
//
// The authoritative definition lives in internal/store/migrations.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Quantity    int32
}
