package ports

import (
	"context"

	"retailedge/domain/table"
)

// FileFetcher retrieves the raw bytes of a source spreadsheet. Transport
// concerns (timeouts, status handling) live behind this port; the pipeline
// only ever sees complete byte payloads.
type FileFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// TableDecoder turns raw tabular bytes into an InputTable. The decoder
// owns format detection (xlsx vs csv) and header extraction; the pipeline
// assumes the table it receives is a complete rectangular structure.
type TableDecoder interface {
	Decode(data []byte, sourceName string) (*table.InputTable, error)
}
