// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the connection, schema creation and the Store repository.

# Connecting

Open selects the driver from the database type (sqlite via modernc.org/sqlite,
postgres via lib/pq) and pings the server:

	conn, err := db.Open(ctx, db.TypeSQLite, "file:votr.db")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: prompt, enabled flag, owner token
  - answer: options per question
  - vote: one row per vote cast

# Relationships

	question 1──* answer
	answer   1──* vote

Foreign keys are declared, but deletion is cascaded by Store.DeleteQuestion
inside a transaction so behavior is identical on both databases.

# Transactions

Store.WithTx wraps a function in a transaction and rolls back on any error.
Answer and vote creation insert the child row and confirm the parent link in
the same transaction, so a failed link never leaves an orphan row.
*/
package db
