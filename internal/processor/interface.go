package processor

import "context"

// Processor turns one transcript file into a generated script on disk.
type Processor interface {
	Process(ctx context.Context, transcriptPath string) error
}
