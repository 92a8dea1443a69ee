package flatten

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

const (
	entryListCommentPrefixConstant     = "#"
	entryListReadErrorTemplateConstant = "unable to read entry list %s: %w"
	entryListScanErrorTemplateConstant = "unable to scan entry list: %w"
)

// NewEntries converts raw path arguments into entries, dropping blanks.
func NewEntries(sourcePaths []string) []Entry {
	entries := make([]Entry, 0, len(sourcePaths))
	for _, sourcePath := range sourcePaths {
		trimmedSourcePath := strings.TrimSpace(sourcePath)
		if len(trimmedSourcePath) == 0 {
			continue
		}
		entries = append(entries, Entry{SourcePath: trimmedSourcePath})
	}
	return entries
}

// ParseEntryList reads newline-delimited source paths, ignoring blank lines
// and lines starting with #.
func ParseEntryList(reader io.Reader) ([]Entry, error) {
	var entries []Entry

	lineScanner := bufio.NewScanner(reader)
	for lineScanner.Scan() {
		line := strings.TrimSpace(lineScanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, entryListCommentPrefixConstant) {
			continue
		}
		entries = append(entries, Entry{SourcePath: line})
	}
	if scanError := lineScanner.Err(); scanError != nil {
		return nil, fmt.Errorf(entryListScanErrorTemplateConstant, scanError)
	}

	return entries, nil
}

// LoadEntryListFile reads an entry list from the named file through the
// provided filesystem collaborator.
func LoadEntryListFile(fileSystem FileSystem, listFilePath string) ([]Entry, error) {
	listContent, readError := fileSystem.ReadFile(listFilePath)
	if readError != nil {
		return nil, fmt.Errorf(entryListReadErrorTemplateConstant, listFilePath, readError)
	}
	return ParseEntryList(bytes.NewReader(listContent))
}
