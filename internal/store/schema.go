package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS document (
    id          INTEGER PRIMARY KEY CHECK (id = 1),
    revision    INTEGER NOT NULL,
    body        TEXT NOT NULL,
    saved_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revision_log (
    revision    INTEGER PRIMARY KEY,
    op          TEXT NOT NULL,
    saved_at    TEXT NOT NULL
);
`
