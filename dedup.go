package crashreport

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Deduplicate clears the stack trace of every record whose raw trace was
// already seen earlier in records. The earliest record keeps its trace;
// records without a trace are left untouched.
//
// The seen set lives for a single call.
func Deduplicate(records []ExceptionRecord) {
	seen := make(map[uint64]struct{}, len(records))
	for i := range records {
		if records[i].Stacktrace == nil {
			continue
		}
		h := traceHash(records[i].Stacktrace)
		if _, dup := seen[h]; dup {
			records[i].Stacktrace = nil
			continue
		}
		seen[h] = struct{}{}
	}
}

// traceHash fingerprints a trace's full content. Fields are NUL separated
// and frames newline terminated, so distinct frame lists never encode alike.
func traceHash(st *Stacktrace) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 128)
	for _, f := range st.Frames {
		buf = buf[:0]
		buf = append(buf, f.AbsPath...)
		buf = append(buf, 0)
		buf = append(buf, f.Function...)
		buf = append(buf, 0)
		buf = strconv.AppendInt(buf, int64(f.Line), 10)
		buf = append(buf, 0)
		buf = strconv.AppendInt(buf, int64(f.Column), 10)
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
