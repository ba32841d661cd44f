package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
)

type unmarshalFunc func(data []byte, v interface{}) error

const defaultDecoder = "encoding/json"

var decoders = map[string]unmarshalFunc{
	"encoding/json": json.Unmarshal,
	"jsoniter":      jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
	"go-json":       gojson.Unmarshal,
}

func lookupDecoder(name string) (unmarshalFunc, error) {
	unmarshal, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown decoder %q (available: %s)", name, strings.Join(decoderNames(), ", "))
	}
	return unmarshal, nil
}

func decoderNames() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
