// Package main provides the MX matrix library CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mx-ml/mx/matfile"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("MX matrix library %s\n", version)
			return
		case "info":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: mx info <file.mx>")
				os.Exit(2)
			}
			if err := info(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "mx: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("MX - dense generic matrices for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version          Show version")
	fmt.Println("  info <file.mx>   Inspect a matrix container file")
}

// info prints the header of a .mx container file.
func info(path string) error {
	r, err := matfile.NewReader(path)
	if err != nil {
		return err
	}

	header := r.Header()
	fmt.Printf("%s: .mx container (format v%d, written by MX %s)\n",
		path, header.FormatVersion, header.MXVersion)
	fmt.Printf("created: %s\n", header.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	if len(header.Metadata) > 0 {
		fmt.Println("metadata:")
		for k, v := range header.Metadata {
			fmt.Printf("  %s = %s\n", k, v)
		}
	}

	fmt.Printf("matrices: %d\n", len(r.MatrixNames()))
	for _, name := range r.MatrixNames() {
		meta, err := r.Info(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-24s %-10s %dx%d  %d bytes\n",
			meta.Name, meta.DType, meta.Rows, meta.Cols, meta.Size)
	}
	return nil
}
