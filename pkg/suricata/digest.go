package suricata

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/vertti/suricheck/pkg/fsprobe"
)

// digestHexLen is the number of hex characters reported.
const digestHexLen = 16

// RulesetDigest hashes the names and contents of files, in the given order,
// into a short blake3 fingerprint. Two hosts with the same digest run the
// same ruleset.
func RulesetDigest(fsys fsprobe.FileSystem, files []string) (string, error) {
	h := blake3.New()
	for _, f := range files {
		data, err := fsys.ReadFile(f, 0)
		if err != nil {
			return "", fmt.Errorf("read rule file: %w", err)
		}
		_, _ = h.Write([]byte(filepath.Base(f)))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write(data)
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:digestHexLen], nil
}
