package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/go-spatial/mssqlgeom/pkg/sqlgeom"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <hex-encoded geometry column bytes>", os.Args[0])
	}

	data, err := hex.DecodeString(os.Args[1])
	if err != nil {
		log.Fatalf("decode hex argument: %v", err)
	}

	parser := sqlgeom.NewParser(sqlgeom.DefaultParseOptions())
	value, err := parser.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("SRID: %d\n", value.SRID)
	fmt.Printf("Type: %s\n", value.Root.Type)

	bounds := sqlgeom.Bounds(value.Root)
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
}
