package freedompay

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

const paramSignature = "pg_sig"

// Sign подпись запроса: md5 от имени скрипта, значений параметров,
// отсортированных по ключу, и секретного ключа, соединённых через ';'
func Sign(script string, params url.Values, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == paramSignature {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+2)
	parts = append(parts, script)
	for _, k := range keys {
		parts = append(parts, params.Get(k))
	}
	parts = append(parts, secret)

	sum := md5.Sum([]byte(strings.Join(parts, ";")))
	return hex.EncodeToString(sum[:])
}
