package util

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
)

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	data, err := os.ReadFile(file)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return value, nil
}

// Reads a delimited file into structs of type T.
//
// Columns are matched to fields through the `csv` struct tag. Pointer fields
// (*float64, *int64, *string) stay nil for empty cells. Rows with a wrong field
// count are skipped.
func ReadCSVFromFile[T any](filename string, delimiter rune) (func(yield func(T) bool), error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		return nil, err
	}
	return ReadCSV[T](data, delimiter)
}

type _CSVField struct {
	index int
	row   int
	kind  reflect.Kind
	ptr   bool
}

func ReadCSV[T any](data []byte, delimiter rune) (func(yield func(T) bool), error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	name_row_mapping := NewDict[string, int](10)
	for i, name := range header {
		name_row_mapping[name] = i
	}

	var val T
	typ := reflect.TypeOf(val)
	if typ.Kind() != reflect.Struct {
		return nil, errors.New("csv target must be a struct")
	}
	num_field := typ.NumField()
	fields := NewList[_CSVField](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("csv")
		if tag == "" {
			continue
		}
		if !name_row_mapping.ContainsKey(tag) {
			continue
		}
		row := name_row_mapping[tag]
		ftyp := field.Type
		ptr := false
		if ftyp.Kind() == reflect.Pointer {
			ftyp = ftyp.Elem()
			ptr = true
		}
		kind := _NormalizeKind(ftyp.Kind())
		if kind == reflect.Invalid {
			continue
		}
		fields.Add(_CSVField{index: i, row: row, kind: kind, ptr: ptr})
	}

	return func(yield func(T) bool) {
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			} else if err != nil {
				continue
			}
			t := reflect.New(typ).Elem()
			for _, field := range fields {
				value := record[field.row]
				if value == "" {
					continue
				}
				f := t.Field(field.index)
				if field.ptr {
					p := reflect.New(f.Type().Elem())
					if !_SetValue(p.Elem(), field.kind, value) {
						continue
					}
					f.Set(p)
				} else {
					_SetValue(f, field.kind, value)
				}
			}
			if !yield(t.Interface().(T)) {
				break
			}
		}
	}, nil
}

func _NormalizeKind(kind reflect.Kind) reflect.Kind {
	switch kind {
	case reflect.Bool:
		return reflect.Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.Int
	case reflect.Float32, reflect.Float64:
		return reflect.Float64
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.Uint
	case reflect.String:
		return reflect.String
	}
	return reflect.Invalid
}

func _SetValue(f reflect.Value, kind reflect.Kind, value string) bool {
	switch kind {
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false
		}
		f.SetBool(b)
	case reflect.Int:
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return false
		}
		f.SetInt(num)
	case reflect.Uint:
		num, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return false
		}
		f.SetUint(num)
	case reflect.Float64:
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		f.SetFloat(num)
	case reflect.String:
		f.SetString(value)
	default:
		return false
	}
	return true
}
