package ygggo_building

import (
	"net/url"
	"sort"

	_ "modernc.org/sqlite"
)

// default pragmas for file-backed stores; callers may override any of them through Params
var sqlitePragmas = map[string]string{
	"busy_timeout": "5000",
	"foreign_keys": "1",
	"journal_mode": "WAL",
}

// buildSQLiteDSN builds a modernc sqlite URI: the escaped file path followed by _pragma
// parameters. '#', '?' and '%' in the path are percent-encoded; sqlite decodes them on open.
func buildSQLiteDSN(path string, params map[string]string) string {
	pragmas := make(map[string]string, len(sqlitePragmas)+len(params))
	for k, v := range sqlitePragmas {
		pragmas[k] = v
	}
	for k, v := range params {
		pragmas[k] = v
	}
	// stable order keeps DSNs comparable in tests
	keys := make([]string, 0, len(pragmas))
	for k := range pragmas {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	q := url.Values{}
	for _, k := range keys {
		q.Add("_pragma", k+"("+pragmas[k]+")")
	}
	u := url.URL{Scheme: "file", Path: path, OmitHost: true, RawQuery: q.Encode()}
	return u.String()
}
