package backup

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// spaceHeadroom is extra free space required beyond the estimated archive
// size, covering zip overhead and anything else writing to the volume.
const spaceHeadroom = 16 << 20 // 16 MiB

// CheckSpace verifies the filesystem holding path has room for a backup of
// roughly need bytes. The estimate is the uncompressed total, so this is
// conservative; deflate only ever shrinks it.
func CheckSpace(path string, need uint64) error {
	usage, err := disk.Usage(path)
	if err != nil {
		return fmt.Errorf("failed to check free space at %s: %w", path, err)
	}
	if usage.Free < need+spaceHeadroom {
		return fmt.Errorf("insufficient space at %s: %d bytes free, about %d needed", path, usage.Free, need+spaceHeadroom)
	}
	return nil
}
