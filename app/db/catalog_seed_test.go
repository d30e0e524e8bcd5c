package database

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-yatra/internal/api/catalog"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

type seedRow struct {
	id       string
	parent   string
	position int
	rest     string
}

var (
	stateRowRe = regexp.MustCompile(`^\s*\('([^']+)', (\d+), (.*)\)[,;]$`)
	childRowRe = regexp.MustCompile(`^\s*\('([^']+)', '([^']+)', (\d+), (.*)\)[,;]$`)
)

// migrationRows returns the VALUES rows of the INSERT INTO table statement in file order.
func migrationRows(t *testing.T, table string) []seedRow {
	t.Helper()
	data, err := migrationFS.ReadFile("migrations/000001_catalog.up.sql")
	require.NoError(t, err)

	var rows []seedRow
	inBlock := false
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "INSERT INTO "+table+" (") {
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		var row seedRow
		if table == "states" {
			m := stateRowRe.FindStringSubmatch(line)
			require.NotNil(t, m, "unparsable %s row: %s", table, line)
			row.id, row.rest = m[1], m[3]
			row.position, _ = strconv.Atoi(m[2])
		} else {
			m := childRowRe.FindStringSubmatch(line)
			require.NotNil(t, m, "unparsable %s row: %s", table, line)
			row.id, row.parent, row.rest = m[1], m[2], m[4]
			row.position, _ = strconv.Atoi(m[3])
		}
		rows = append(rows, row)
		if strings.HasSuffix(line, ";") {
			break
		}
	}
	require.NoError(t, sc.Err())
	require.NotEmpty(t, rows, "no rows for %s", table)
	return rows
}

func sqlText(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func sqlArray[T ~string](values []T) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = sqlText(string(v))
	}
	return "ARRAY[" + strings.Join(quoted, ", ") + "]::text[]"
}

func assertPositions(t *testing.T, table string, rows []seedRow) {
	t.Helper()
	for i, r := range rows {
		assert.Equal(t, i+1, r.position, "%s row %q", table, r.id)
	}
}

func TestCatalogMigrationMatchesSeed(t *testing.T) {
	c := catalog.Seed()

	t.Run("states", func(t *testing.T) {
		rows := migrationRows(t, "states")
		assertPositions(t, "states", rows)

		states := c.States()
		require.Len(t, rows, len(states))
		for i, s := range states {
			assert.Equal(t, s.ID, rows[i].id)
			want := fmt.Sprintf("%s, %s, %s, %s", sqlText(s.Name), sqlText(s.Description), sqlText(s.Image), sqlArray(s.Highlights))
			assert.Equal(t, want, rows[i].rest, "state %q", s.ID)
		}
	})

	t.Run("cities", func(t *testing.T) {
		rows := migrationRows(t, "cities")
		assertPositions(t, "cities", rows)

		var cities []types.City
		for _, s := range c.States() {
			cities = append(cities, c.CitiesForState(s.ID)...)
		}
		require.Len(t, rows, len(cities))
		for i, city := range cities {
			assert.Equal(t, city.ID, rows[i].id)
			assert.Equal(t, city.StateID, rows[i].parent, "city %q", city.ID)
			want := fmt.Sprintf("%s, %s, %s, %s, %s",
				sqlText(city.Name), sqlText(city.Description), sqlText(city.Image), sqlArray(city.Tags), sqlArray(city.BestFor))
			assert.Equal(t, want, rows[i].rest, "city %q", city.ID)
		}
	})

	t.Run("places", func(t *testing.T) {
		rows := migrationRows(t, "places")
		assertPositions(t, "places", rows)

		byCity := make(map[string][]seedRow)
		for _, r := range rows {
			byCity[r.parent] = append(byCity[r.parent], r)
		}

		total := 0
		for _, s := range c.States() {
			for _, city := range c.CitiesForState(s.ID) {
				places := c.PlacesForCity(city.ID)
				got := byCity[city.ID]
				require.Len(t, got, len(places), "places of %q", city.ID)
				for i, p := range places {
					assert.Equal(t, p.ID, got[i].id)
					want := fmt.Sprintf("%s, %s, %s, %s, %s",
						sqlText(p.Name), sqlText(p.Description), sqlText(p.Image), sqlText(p.Category), sqlText(p.VisitDuration))
					assert.Equal(t, want, got[i].rest, "place %q", p.ID)
				}
				total += len(places)
			}
		}
		assert.Len(t, rows, total)
	})
}
