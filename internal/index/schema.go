package index

// Schema DDL for the search index. The index is rebuilt from the
// categories document and never written back. Ids carry no uniqueness
// constraint so a hand-edited document with duplicates still indexes.
const (
	createCategories = `CREATE TABLE categories (
    category_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    position INTEGER PRIMARY KEY
);`

	createWebsites = `CREATE TABLE websites (
    website_id INTEGER NOT NULL,
    category_pos INTEGER NOT NULL,
    position INTEGER NOT NULL,
    name_lc TEXT NOT NULL,
    description_lc TEXT NOT NULL,
    PRIMARY KEY (category_pos, position),
    FOREIGN KEY (category_pos) REFERENCES categories(position)
);`
)

var schemaStatements = []string{
	createCategories,
	createWebsites,
}
