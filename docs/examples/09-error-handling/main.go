package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"github.com/go-spatial/mssqlgeom/pkg/sqlgeom"
)

func safeParse(hexData string) (sqlgeom.Value, error) {
	data, err := hex.DecodeString(hexData)
	if err != nil {
		return sqlgeom.Value{}, fmt.Errorf("not valid hex: %w", err)
	}

	value, err := sqlgeom.Parse(data, sqlgeom.KindGeometry)
	if err != nil {
		var merr *sqlgeom.MalformedInputError
		if errors.As(err, &merr) {
			log.Printf("malformed input (%s) at offset %d of %d bytes", merr.Reason, merr.Offset, merr.Len)
		}
		return sqlgeom.Value{}, err
	}

	return value, nil
}

func main() {
	value, err := safeParse("E6100000010C000000000000F03F0000000000000040")
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}
	fmt.Printf("Successfully decoded SRID=%d, type=%s\n", value.SRID, value.Root.Type)

	if _, err := safeParse("00"); err != nil {
		log.Printf("Expected error: %v", err)
	}
}
