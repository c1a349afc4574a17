// File: doc.go
// Title: CCL Export Package Documentation
// Description: Documents the export package that converts parsed CCL
//              documents into JSON, YAML, and TOML.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial export implementation

/*
Package export converts parsed CCL documents into other configuration
formats. Root variables become top-level keys and categories become nested
maps:

	port = 8080;
	-server-
	host = "localhost";

exports to JSON as

	{"port": 8080, "server": {"host": "localhost"}}

CCL permits duplicate variable and category names; the target formats do
not. Exporting keeps the first occurrence of each name, matching the lookup
semantics of ast.Document.
*/
package export
