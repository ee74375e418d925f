// Command ifc1 is the CLI front end for the IFC1 compressor: compress,
// decompress, inspect, and pick (detect + dispatch) a file.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/honganasu06/ifc1"
	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/detect"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("missing subcommand")
	}

	switch args[0] {
	case "compress":
		return runCompress(args[1:])
	case "decompress":
		return runDecompress(args[1:])
	case "stats":
		return runStats(args[1:])
	case "pick":
		return runPick(args[1:])
	default:
		printUsage()
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  ifc1 compress <file>        write <file>.ifc
  ifc1 decompress <file.ifc>  write <file>.restored
  ifc1 stats <file.ifc>       print strategy id, sizes
  ifc1 pick <file>            compress or decompress based on extension`)
}

func runCompress(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("compress requires exactly one file argument")
	}

	in := args[0]
	out := in + ".ifc"
	if err := ifc1.Compress(in, out); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)

	return nil
}

func runDecompress(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("decompress requires exactly one file argument")
	}

	in := args[0]
	out := strings.TrimSuffix(in, ".ifc") + ".restored"
	if err := ifc1.Decompress(in, out); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)

	return nil
}

func runStats(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("stats requires exactly one file argument")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	hdr, payload, err := container.Read(f)
	if err != nil {
		return err
	}

	fmt.Printf("strategy:      %s\n", hdr.StrategyID)
	fmt.Printf("file size:     %d bytes\n", info.Size())
	fmt.Printf("metadata size: %d bytes\n", hdr.MetaLen)
	fmt.Printf("payload size:  %d bytes\n", len(payload))
	if hdr.Metadata.OriginalSize > 0 {
		fmt.Printf("original size: %d bytes\n", hdr.Metadata.OriginalSize)
		fmt.Printf("ratio:         %.2fx\n", float64(hdr.Metadata.OriginalSize)/float64(info.Size()))
	}
	fmt.Printf("token count:   %d\n", hdr.Metadata.TokenCount)

	hash, err := detect.QuickHash(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("xxhash64:      %016x\n", hash)

	return nil
}

// runPick implements the file-picker front-end's contract: select a file,
// and based on its extension, either decompress it into a sibling
// decompressed_files/ directory or compress it into a sibling
// compressed_files/ directory.
func runPick(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("pick requires exactly one file argument")
	}

	in := args[0]
	dir := filepath.Dir(in)
	base := filepath.Base(in)

	if filepath.Ext(in) == ".ifc" {
		destDir := filepath.Join(dir, "decompressed_files")
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return err
		}

		restoredName := base[:len(base)-len(".ifc")] + ".restored"
		out := filepath.Join(destDir, restoredName)
		if err := ifc1.Decompress(in, out); err != nil {
			return err
		}

		fmt.Printf("decompressed into %s\n", out)

		return nil
	}

	if _, err := detect.Detect(in); err != nil {
		return err
	}

	destDir := filepath.Join(dir, "compressed_files")
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}

	out := filepath.Join(destDir, base+".ifc")
	if err := ifc1.Compress(in, out); err != nil {
		return err
	}

	fmt.Printf("compressed into %s\n", out)

	return nil
}
