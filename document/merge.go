package document

// Merge recursively merges patch into base, with patch values taking
// precedence. Tables merge key by key; every other value kind (scalar,
// array, or a table/non-table mismatch) is replaced by the patch value
// wholesale — a patch array fully overrides a base array, including
// replacing it with an empty one. Keys absent from the patch are left
// untouched in base.
func Merge(base, patch Table) {
	for key, patchVal := range patch {
		baseVal, exists := base[key]
		if !exists {
			base[key] = patchVal
			continue
		}
		baseTable, baseOK := baseVal.(Table)
		patchTable, patchOK := patchVal.(Table)
		if baseOK && patchOK {
			Merge(baseTable, patchTable)
			continue
		}
		base[key] = patchVal
	}
}

// Clone deep-copies a table so a patch merge can never mutate the
// pristine base value. Each patch application starts from a fresh clone.
func Clone(tbl Table) Table {
	out := make(Table, len(tbl))
	for key, val := range tbl {
		out[key] = cloneValue(val)
	}
	return out
}

func cloneValue(val any) any {
	switch v := val.(type) {
	case Table:
		return Clone(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	case []Table:
		// The TOML parser produces []map[string]any for arrays of tables.
		out := make([]Table, len(v))
		for i, e := range v {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}
