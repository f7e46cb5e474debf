package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aretw0/dialogtree/pkg/domain"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS nodes (
	id   TEXT PRIMARY KEY,
	text TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS options (
	node_id      TEXT    NOT NULL REFERENCES nodes(id) ON DELETE CASCADE,
	position     INTEGER NOT NULL,
	next_node_id TEXT    NOT NULL,
	label        TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (node_id, position)
);
`

// NodeStore implements ports.NodeStore on a SQLite database.
// Option targets are plain text so dangling references are stored as-is.
type NodeStore struct {
	db   *sql.DB
	Path string
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*NodeStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// Each connection would otherwise see its own empty database.
		conn.SetMaxOpenConns(1)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &NodeStore{db: conn, Path: path}, nil
}

// Close closes the database connection.
func (s *NodeStore) Close() error {
	return s.db.Close()
}

// Put inserts or replaces a node together with its options.
func (s *NodeStore) Put(ctx context.Context, node domain.Node) error {
	if node.ID == "" {
		return fmt.Errorf("node ID cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM options WHERE node_id = ?`, node.ID); err != nil {
		return fmt.Errorf("clearing options of %s: %w", node.ID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO nodes (id, text) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET text = excluded.text`,
		node.ID, node.Text,
	); err != nil {
		return fmt.Errorf("upserting node %s: %w", node.ID, err)
	}
	for i, opt := range node.Options {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO options (node_id, position, next_node_id, label) VALUES (?, ?, ?, ?)`,
			node.ID, i, opt.NextNodeID, opt.Label,
		); err != nil {
			return fmt.Errorf("inserting option %d of %s: %w", i, node.ID, err)
		}
	}

	return tx.Commit()
}

// Seed puts every node in order.
func (s *NodeStore) Seed(ctx context.Context, nodes ...domain.Node) error {
	for _, n := range nodes {
		if err := s.Put(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

// GetByID loads a node and its options ordered by position.
func (s *NodeStore) GetByID(ctx context.Context, id string) (*domain.Node, error) {
	node := &domain.Node{ID: id}
	err := s.db.QueryRowContext(ctx, `SELECT text FROM nodes WHERE id = ?`, id).Scan(&node.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NodeNotFoundError{NodeID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("querying node %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT next_node_id, label FROM options WHERE node_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying options of %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var opt domain.Option
		if err := rows.Scan(&opt.NextNodeID, &opt.Label); err != nil {
			return nil, fmt.Errorf("scanning option of %s: %w", id, err)
		}
		node.Options = append(node.Options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating options of %s: %w", id, err)
	}
	return node, nil
}

// ListNodes returns all node IDs sorted alphabetically.
func (s *NodeStore) ListNodes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM nodes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning node id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
