package metadata

// Validate checks a caller-supplied metadata mapping and returns its
// canonical form. It rejects inputs that are not a mapping, keys that are
// not recognized field names, and mappings missing a mandatory field; every
// present value is run through its codec's Normalize, surfacing codec
// validation failures. The returned mapping is restricted to recognized keys
// with canonical values.
//
// Accepted input types are Metadata, map[Field]any and map[string]any.
func Validate(raw any) (Metadata, error) {
	var in Metadata
	switch v := raw.(type) {
	case Metadata:
		in = v
	case map[Field]any:
		in = Metadata(v)
	case map[string]any:
		in = make(Metadata, len(v))
		for k, val := range v {
			in[Field(k)] = val
		}
	default:
		return nil, &ValidationError{Reason: "metadata must be a mapping"}
	}

	out := make(Metadata, len(in))
	for k, v := range in {
		codec, ok := codecs[k]
		if !ok {
			return nil, errf(k, "unknown metadata key")
		}
		canonical, err := codec.Normalize(v)
		if err != nil {
			return nil, err
		}
		out[k] = canonical
	}

	for f, codec := range codecs {
		if codec.Mandatory() {
			if _, ok := out[f]; !ok {
				return nil, errf(f, "missing mandatory metadata key")
			}
		}
	}
	return out, nil
}
