package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"mkvlive/internal/ebml"
	"mkvlive/internal/matroska"
)

// runCLI executes the command tree with a fresh root, capturing stdout and
// stderr. A nil stdin leaves the command reading from the real one.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	// Point at a config path that does not exist so defaults apply
	// regardless of the developer's home directory.
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func wire(t *testing.T, id uint32, payload []byte) []byte {
	t.Helper()
	b, err := ebml.AppendID(nil, id)
	if err != nil {
		t.Fatal(err)
	}
	b = ebml.AppendSize(b, uint64(len(payload)))
	return append(b, payload...)
}

func wireUint(t *testing.T, id uint32, v uint64) []byte {
	return wire(t, id, ebml.AppendUint(nil, v))
}

func wireMaster(t *testing.T, id uint32, children ...[]byte) []byte {
	return wire(t, id, bytes.Join(children, nil))
}

// sampleStream builds Header + Segment{Info, SeekHead, Cluster, Tags} with
// a five-second Duration at the default timecode scale.
func sampleStream(t *testing.T) []byte {
	t.Helper()
	header := wireMaster(t, matroska.IDEBML,
		wire(t, 0x4282, []byte("matroska")), // DocType
		wireUint(t, 0x4287, 4),              // DocTypeVersion
	)
	info := wireMaster(t, matroska.IDInfo,
		wire(t, matroska.IDDuration, ebml.AppendFloat(nil, 5000.0)),
		wireUint(t, matroska.IDTimecodeScale, 1000000),
	)
	seekHead := wireMaster(t, matroska.IDSeekHead,
		wireMaster(t, 0x4dbb, // Seek
			wire(t, 0x53ab, []byte{0x15, 0x49, 0xa9, 0x66}), // SeekID
			wireUint(t, 0x53ac, 42),                         // SeekPosition
		),
	)
	cluster := wireMaster(t, matroska.IDCluster,
		wireUint(t, 0xe7, 0),                                     // Timecode
		wire(t, 0xa3, []byte{0x81, 0x00, 0x00, 0x80, 0xca, 0xfe}), // SimpleBlock
	)
	tags := wireMaster(t, matroska.IDTags,
		wireMaster(t, 0x7373, // Tag
			wireMaster(t, 0x67c8, // SimpleTag
				wire(t, 0x45a3, []byte("TITLE")),      // TagName
				wire(t, 0x4487, []byte("Live Feed")), // TagString
			),
		),
	)
	segment := wireMaster(t, matroska.IDSegment, info, seekHead, cluster, tags)
	return append(header, segment...)
}

func sampleFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.mkv")
	if err := os.WriteFile(path, sampleStream(t), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}
