// kbgen/pkg/karabiner/query.go

package karabiner

import (
	"github.com/tidwall/gjson"

	"rgehrsitz/kbgen/pkg/logging"
)

// Query evaluates a gjson path such as "rules.#.description" against an
// encoded JSON document.
func Query(doc []byte, path string) (gjson.Result, error) {
	if !gjson.ValidBytes(doc) {
		return gjson.Result{}, logging.NewError(logging.ErrorTypeQuery, "document is not valid JSON", nil, nil)
	}
	res := gjson.GetBytes(doc, path)
	if !res.Exists() {
		return gjson.Result{}, logging.NewError(logging.ErrorTypeQuery, "path matched nothing", nil,
			map[string]interface{}{"path": path})
	}
	return res, nil
}
