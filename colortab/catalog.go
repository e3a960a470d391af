package colortab

import (
	"encoding/json"
	"fmt"
)

// Catalog is a read-only, name-keyed collection of color tables.
// Order of the source asset is preserved for Names and Tables.
type Catalog struct {
	tables []ColorTable
	byName map[string]int
}

// NewCatalog builds a Catalog from tables, rejecting duplicate names.
func NewCatalog(tables []ColorTable) (*Catalog, error) {
	c := &Catalog{
		tables: make([]ColorTable, len(tables)),
		byName: make(map[string]int, len(tables)),
	}
	copy(c.tables, tables)
	for i := range c.tables {
		name := c.tables[i].Name
		if _, ok := c.byName[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTable, name)
		}
		c.byName[name] = i
	}

	return c, nil
}

// ParseCatalog decodes a JSON array of color tables (the shape of the
// color-tables.json asset) into a Catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var tables []ColorTable
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("colortab: parse catalog: %w", err)
	}

	return NewCatalog(tables)
}

// Get returns the table registered under name.
func (c *Catalog) Get(name string) (ColorTable, error) {
	i, ok := c.byName[name]
	if !ok {
		return ColorTable{}, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}

	return c.tables[i], nil
}

// Names lists the table names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.tables))
	for i := range c.tables {
		names[i] = c.tables[i].Name
	}

	return names
}

// Tables returns a copy of all tables in catalog order.
func (c *Catalog) Tables() []ColorTable {
	cp := make([]ColorTable, len(c.tables))
	copy(cp, c.tables)

	return cp
}

// Len reports the number of tables.
func (c *Catalog) Len() int { return len(c.tables) }
