package selenite

// ReadSnapshot reads the headers and rows currently shown by src. Errors from
// src are returned unchanged.
func ReadSnapshot(src TableSource) (Snapshot, error) {
	headers, err := src.Headers()
	if err != nil {
		return Snapshot{}, err
	}
	rows, err := src.Rows()
	if err != nil {
		return Snapshot{}, err
	}
	debugLog("read table: %d columns, %d rows", len(headers), len(rows))
	return Snapshot{Headers: headers, Rows: rows}, nil
}

// ZipRecords pairs headers with each row positionally. Cells beyond the last
// header are dropped; columns beyond the last cell are left out of the
// record.
func ZipRecords(headers []string, rows ...Row) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		n := len(headers)
		if len(row) < n {
			n = len(row)
		}
		r := make(Record, n)
		for i := 0; i < n; i++ {
			r[headers[i]] = row[i]
		}
		records = append(records, r)
	}
	return records
}
