package parser

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/ttpr0/go-multiroute/graph"
	"golang.org/x/exp/slog"
)

//*******************************************
// postgis provider
//*******************************************

var table_name = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

func ConnectPostgres(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// Loads a graph from a nodes and an edges table.
//
// The nodes table needs osmid, x and y; the edges table u, v and optionally
// key, length, travel_time, speed_kph, highway, name and a geom column.
func LoadPostgres(ctx context.Context, db *sqlx.DB, nodes_table, edges_table string) (*graph.Graph, error) {
	if !table_name.MatchString(nodes_table) || !table_name.MatchString(edges_table) {
		return nil, fmt.Errorf("invalid table name %q or %q", nodes_table, edges_table)
	}

	nodes := []NodeRow{}
	query := fmt.Sprintf(`SELECT osmid, x, y FROM %s`, nodes_table)
	if err := db.SelectContext(ctx, &nodes, query); err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}

	edges := []EdgeRow{}
	query = fmt.Sprintf(`
		SELECT
			u, v, key,
			length, travel_time, speed_kph,
			highway, name,
			ST_AsText(geom) AS geometry
		FROM %s
		ORDER BY u, v, key`, edges_table)
	if err := db.SelectContext(ctx, &edges, query); err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}

	b := graph.NewBuilder()
	invalid := _AddRows(b, _SliceSeq(nodes), _SliceSeq(edges))
	g := b.Build()
	slog.Info("loaded graph from postgres", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "invalid_geometries", invalid, "dropped_edges", b.DroppedEdges())
	return g, nil
}
