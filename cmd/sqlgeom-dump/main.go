// Command sqlgeom-dump runs a query against a SQL Server database and
// prints the decoded form of each geometry or geography value it returns.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-spatial/mssqlgeom/internal/sqlclient"
	"github.com/go-spatial/mssqlgeom/pkg/sqlgeom"
)

func main() {
	dsn := flag.String("dsn", os.Getenv("SQLGEOM_DSN"), "sqlserver:// connection string (or set SQLGEOM_DSN)")
	query := flag.String("query", "", "query selecting (id, geometry/geography column) pairs")
	geography := flag.Bool("geography", false, "treat the column as geography instead of geometry")
	geojson := flag.Bool("geojson", false, "print each value as GeoJSON instead of a summary line")
	flag.Parse()

	if *dsn == "" || *query == "" {
		log.Fatal("both -dsn and -query are required")
	}

	kind := sqlgeom.KindGeometry
	if *geography {
		kind = sqlgeom.KindGeography
	}

	db, err := sqlclient.Open(*dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rows, err := sqlclient.QueryValues(context.Background(), db, kind, *query)
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range rows {
		if *geojson {
			gj := sqlgeom.ToGeoJSON(row.Value.Root)
			b, err := gj.MarshalJSON()
			if err != nil {
				log.Printf("row %d: marshal GeoJSON: %v", row.ID, err)
				continue
			}
			fmt.Printf("%d\t%s\n", row.ID, b)
			continue
		}

		bounds := sqlgeom.Bounds(row.Value.Root)
		fmt.Printf("%d\tSRID=%d\t%s\tbounds=[%.6f,%.6f %.6f,%.6f]\n",
			row.ID, row.Value.SRID, row.Value.Root.Type,
			bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
	}
}
