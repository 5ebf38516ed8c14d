package pipeline

import "fmt"

// fixtureKeys are literal values expected at fixed rows of the key table.
var fixtureKeys = map[int]string{
	0:  "alanapatcacsiciolilynnaonplppsatiyt",
	2:  "alanapatcacsiciolilynansonplppssatiyt",
	3:  "alancsdeelicllymonaodsmtiyt",
	7:  "alancadeeliclmlslymonaodstiyt",
	12: "agalctcudugriclpltodprrariroststuuculur",
	17: "aiesinirlinerls",
}

// MakeTestKeys returns n keys: fixture values at their rows, key_filler_<i>
// everywhere else. Fixture rows at or past n are skipped.
func MakeTestKeys(n int) []string {
	if n <= 0 {
		return []string{}
	}
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key_filler_%d", i)
	}
	for idx, val := range fixtureKeys {
		if idx >= 0 && idx < n {
			keys[idx] = val
		}
	}
	return keys
}
