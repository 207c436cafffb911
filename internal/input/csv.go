// Package input loads the identifier list driving one batch run.
package input

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"deepsrt/fetcher/internal/domain"
)

// ReadIdentifiers reads video identifiers from a CSV file. The first row is
// a header and is skipped; the first column of every following row is the
// identifier. Empty rows and rows with an empty identifier are skipped with
// a warning and do not count toward the batch. A missing or unreadable file
// is the caller's problem and aborts the run.
func ReadIdentifiers(path string, logger *log.Logger) ([]domain.Identifier, error) {
	logger.Infof("Reading video IDs from %s", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()

	// Tolerate a UTF-8 or UTF-16 byte-order mark (spreadsheet exports
	// routinely carry one).
	scanner := bufio.NewScanner(transform.NewReader(file,
		unicode.BOMOverride(unicode.UTF8.NewDecoder())))

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
		}
		logger.Warnf("Input file %s is empty, no header row found", path)
		return nil, nil
	}
	logger.Debugf("Skipped header row: %s", scanner.Text())

	var ids []domain.Identifier
	for row := 1; scanner.Scan(); row++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			logger.Warnf("Skipping empty row %d in %s", row, path)
			continue
		}

		id := firstField(line)
		if id == "" {
			logger.Warnf("Skipping row %d in %s: empty video ID", row, path)
			continue
		}

		ids = append(ids, domain.Identifier(id))
		logger.Debugf("Read video ID: %s", id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	logger.Infof("Read %d video IDs from %s", len(ids), path)
	return ids, nil
}

// firstField extracts the first CSV field of one line, honoring quoting.
func firstField(line string) string {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	record, err := reader.Read()
	if err != nil || len(record) == 0 {
		// Malformed quoting: fall back to a plain comma split.
		return strings.TrimSpace(strings.SplitN(line, ",", 2)[0])
	}
	return strings.TrimSpace(record[0])
}
