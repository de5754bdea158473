// Package migrations holds the schema of the rental database.
// Each file registers its migrations from init(); importing the package
// (the CLI does) makes them available to the migration runner.
package migrations
