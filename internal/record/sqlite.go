package record

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	_ "github.com/mattn/go-sqlite3"

	"github.com/quillaja/gravbox/internal/physics"
)

/*
one row per body per frame. the database is write-heavy and read only after
the run, so journaling and fsync are off and the indices are built on close.
*/

const schema = `
CREATE TABLE bodies (
	frame 	INTEGER,
	id 		INTEGER, -- spawn order
	x 		REAL,
	y 		REAL,
	vx 		REAL,
	vy 		REAL,
	mass 	REAL,
	radius 	REAL);
`

const indices = `
CREATE INDEX IF NOT EXISTS idx_frame ON bodies (frame, id);
CREATE INDEX IF NOT EXISTS idx_id ON bodies (id);
`

const insert = `INSERT INTO bodies VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
const queryFrame = `SELECT x, y, vx, vy, mass, radius FROM bodies WHERE frame = ? ORDER BY id ASC;`

// SQLiteSink stores frames in an sqlite database.
type SQLiteSink struct {
	db   *sql.DB
	stmt *sql.Stmt
}

// OpenSQLite creates a new database in filename. It refuses to touch an
// existing file.
func OpenSQLite(filename string) (*SQLiteSink, error) {
	if _, err := os.Stat(filename); err == nil {
		return nil, fmt.Errorf("%s exists", filename)
	}
	db, err := sql.Open("sqlite3", "file:"+filename+"?_journal_mode=OFF&_synchronous=OFF")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	stmt, err := db.Prepare(insert)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	return &SQLiteSink{db: db, stmt: stmt}, nil
}

// WriteFrame inserts every body of f in one transaction.
func (s *SQLiteSink) WriteFrame(f *Frame) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt := tx.Stmt(s.stmt)
	for id, b := range f.Bodies {
		_, err = stmt.Exec(f.Index, id, b.Pos[0], b.Pos[1], b.Vel[0], b.Vel[1], b.Mass, b.Radius)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert frame %d body %d: %w", f.Index, id, err)
		}
	}
	return tx.Commit()
}

// ReadFrame returns the bodies stored for frame in id order.
func (s *SQLiteSink) ReadFrame(frame int) ([]physics.Body, error) {
	rows, err := s.db.Query(queryFrame, frame)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bodies []physics.Body
	for rows.Next() {
		var b physics.Body
		var x, y, vx, vy float64
		if err := rows.Scan(&x, &y, &vx, &vy, &b.Mass, &b.Radius); err != nil {
			return nil, err
		}
		b.Pos = mgl64.Vec2{x, y}
		b.Vel = mgl64.Vec2{vx, vy}
		bodies = append(bodies, b)
	}
	return bodies, rows.Err()
}

// Close builds the indices and closes the database.
func (s *SQLiteSink) Close() error {
	s.stmt.Close()
	if _, err := s.db.Exec(indices); err != nil {
		s.db.Close()
		return fmt.Errorf("create indices: %w", err)
	}
	return s.db.Close()
}
