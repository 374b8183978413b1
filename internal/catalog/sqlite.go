package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"solar_marketplace/internal/domain"
)

// Store is a sqlite-backed equipment store. Category-specific fields are
// kept in a JSON column; the typed model is the contract, the table is
// just durable storage between restarts.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the sqlite database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// EnsureSchema creates the equipment table and indexes if missing.
func (s *Store) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS equipment (
  id TEXT PRIMARY KEY,
  category TEXT NOT NULL,
  manufacturer TEXT NOT NULL,
  model TEXT NOT NULL,
  price REAL NOT NULL,
  availability TEXT NOT NULL DEFAULT 'in-stock',
  spec_json TEXT NOT NULL DEFAULT '{}'
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_equipment_category ON equipment(category);`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_equipment_price ON equipment(price);`); err != nil {
		return err
	}
	return nil
}

// Count returns the number of stored equipment records.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM equipment`).Scan(&n)
	return n, err
}

// SeedIfEmpty inserts the given data when the table holds no records.
// Existing ids are never overwritten.
func (s *Store) SeedIfEmpty(data Data) error {
	n, err := s.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT OR IGNORE INTO equipment (id, category, manufacturer, model, price, availability, spec_json)
VALUES (?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	insert := func(category string, base domain.EquipmentBase, record interface{}) error {
		spec, err := json.Marshal(record)
		if err != nil {
			return err
		}
		_, err = stmt.Exec(base.ID, category, base.Manufacturer, base.Model, base.Price, base.Availability, string(spec))
		return err
	}

	for _, p := range data.Panels {
		if err := insert(domain.CategoryPanel, p.EquipmentBase, p); err != nil {
			return err
		}
	}
	for _, inv := range data.Inverters {
		if err := insert(domain.CategoryInverter, inv.EquipmentBase, inv); err != nil {
			return err
		}
	}
	for _, b := range data.Batteries {
		if err := insert(domain.CategoryBattery, b.EquipmentBase, b); err != nil {
			return err
		}
	}
	for _, r := range data.Racking {
		if err := insert(domain.CategoryRacking, r.EquipmentBase, r); err != nil {
			return err
		}
	}
	for _, e := range data.Electrical {
		if err := insert(domain.CategoryElectrical, e.EquipmentBase, e); err != nil {
			return err
		}
	}
	for _, m := range data.Monitoring {
		if err := insert(domain.CategoryMonitoring, m.EquipmentBase, m); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadCatalog reads every stored record into a validated in-memory
// catalog. The catalog is the working copy; sqlite is only touched at
// startup or an explicit refresh boundary.
func (s *Store) LoadCatalog() (*Catalog, error) {
	rows, err := s.db.Query(`SELECT category, spec_json FROM equipment ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var data Data
	for rows.Next() {
		var category, spec string
		if err := rows.Scan(&category, &spec); err != nil {
			return nil, err
		}
		switch category {
		case domain.CategoryPanel:
			var p domain.Panel
			if err := json.Unmarshal([]byte(spec), &p); err != nil {
				return nil, fmt.Errorf("decode panel record: %w", err)
			}
			data.Panels = append(data.Panels, p)
		case domain.CategoryInverter:
			var inv domain.Inverter
			if err := json.Unmarshal([]byte(spec), &inv); err != nil {
				return nil, fmt.Errorf("decode inverter record: %w", err)
			}
			data.Inverters = append(data.Inverters, inv)
		case domain.CategoryBattery:
			var b domain.Battery
			if err := json.Unmarshal([]byte(spec), &b); err != nil {
				return nil, fmt.Errorf("decode battery record: %w", err)
			}
			data.Batteries = append(data.Batteries, b)
		case domain.CategoryRacking:
			var r domain.RackingSystem
			if err := json.Unmarshal([]byte(spec), &r); err != nil {
				return nil, fmt.Errorf("decode racking record: %w", err)
			}
			data.Racking = append(data.Racking, r)
		case domain.CategoryElectrical:
			var e domain.ElectricalComponent
			if err := json.Unmarshal([]byte(spec), &e); err != nil {
				return nil, fmt.Errorf("decode electrical record: %w", err)
			}
			data.Electrical = append(data.Electrical, e)
		case domain.CategoryMonitoring:
			var m domain.MonitoringDevice
			if err := json.Unmarshal([]byte(spec), &m); err != nil {
				return nil, fmt.Errorf("decode monitoring record: %w", err)
			}
			data.Monitoring = append(data.Monitoring, m)
		default:
			return nil, fmt.Errorf("unknown equipment category %q", category)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return New(data)
}
