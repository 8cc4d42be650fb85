// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// copyright_header adds the project copyright header to Go files missing it.
//
// With -check it only reports the files missing the header, and exits with an error if there are any.
// Generated files (gen_*.go, or with a "Code generated" comment) are skipped.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProject = flag.String("project", "GoMLX", "Project name to use in the copyright header.")
	flagCheck   = flag.Bool("check", false, "Only list the files missing the header, and exit with status 1 if any.")
)

// maxHeaderLines is how far into a file to look for an existing copyright line.
const maxHeaderLines = 50

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [path ...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnumerates Go files and adds a copyright header if missing.\n")
		fmt.Fprintf(os.Stderr, "Default path is current directory.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	header := makeHeader(*flagProject)
	roots := flag.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}
	var missing []string
	for _, root := range roots {
		files, err := goFiles(root)
		if err != nil {
			klog.Exitf("Error walking path %q: %+v", root, err)
		}
		for _, path := range files {
			changed, err := processFile(path, header, !*flagCheck)
			if err != nil {
				klog.Exitf("%+v", err)
			}
			if changed {
				missing = append(missing, path)
			}
		}
	}
	if *flagCheck && len(missing) > 0 {
		for _, path := range missing {
			fmt.Printf("missing copyright header: %s\n", path)
		}
		os.Exit(1)
	}
}

func makeHeader(project string) string {
	return fmt.Sprintf("// Copyright 2023-2026 The %s Authors. SPDX-License-Identifier: Apache-2.0\n\n", project)
}

// goFiles lists the non-generated Go files under root, skipping hidden directories, vendor and _examples-like
// directories (prefixed with "_").
func goFiles(root string) (files []string, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(name, ".go") && !strings.HasPrefix(name, "gen_") {
			files = append(files, path)
		}
		return nil
	})
	return
}

// processFile checks whether the file is missing the header. If fix is true, the header is added.
// It returns whether the header was missing.
func processFile(path, header string, fix bool) (missing bool, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %q", path)
	}
	newContent, missing := addHeader(string(content), header)
	if !missing || !fix {
		return missing, nil
	}
	klog.Infof("Adding header to %s", path)
	if err = os.WriteFile(path, []byte(newContent), 0o644); err != nil {
		return true, errors.Wrapf(err, "failed to write %q", path)
	}
	return true, nil
}

// addHeader returns the content with the header added, and whether it was missing.
//
// The header goes after the build constraints, if any, separated by an empty line.
// Generated files are never changed.
func addHeader(content, header string) (string, bool) {
	lines := strings.Split(content, "\n")
	lastBuildTagIndex := -1
	for ii, line := range lines {
		if ii > maxHeaderLines {
			break
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "// Copyright"):
			return content, false
		case strings.HasPrefix(trimmed, "// Code generated"):
			return content, false
		case strings.HasPrefix(trimmed, "//go:build"), strings.HasPrefix(trimmed, "// +build"):
			lastBuildTagIndex = ii
		}
	}
	if lastBuildTagIndex == -1 {
		return header + content, true
	}
	prefix := strings.Join(lines[:lastBuildTagIndex+1], "\n")
	suffix := strings.TrimLeft(strings.Join(lines[lastBuildTagIndex+1:], "\n"), "\n")
	return prefix + "\n\n" + header + suffix, true
}
