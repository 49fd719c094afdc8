package cli

import (
	"context"

	"github.com/dmitrijs2005/registerface/internal/filex"
)

const snapshotUsage = "Usage: snapshot upload|get <registration|login> <file.jpg>"

// Snapshot handles "snapshot upload <kind> <file>" and
// "snapshot get <kind> <file>".
func (a *App) Snapshot(ctx context.Context, args []string) error {
	if len(args) != 3 {
		printlnFn(snapshotUsage)
		return errUsage
	}
	action, kind, path := args[0], args[1], args[2]

	switch action {
	case "upload":
		jpeg, err := filex.ReadJPEG(path)
		if err != nil {
			return report("Snapshot", err)
		}
		id, err := a.snapshots.Upload(ctx, kind, jpeg)
		if err != nil {
			return report("Snapshot upload", err)
		}
		printlnFn("Snapshot uploaded:", id)

	case "get":
		b, err := a.snapshots.Download(ctx, kind)
		if err != nil {
			return report("Snapshot download", err)
		}
		if err := filex.WriteFile(path, b); err != nil {
			return report("Snapshot", err)
		}
		printlnFn("Snapshot saved to", path)

	default:
		printlnFn(snapshotUsage)
		return errUsage
	}
	return nil
}
