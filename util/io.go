package util

import (
	"encoding/json"
	"errors"
	"os"
)

//*******************************************
// json io
//*******************************************

func WriteJSONToFile[T any](value T, file string) {
	data, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}

	outfile, err := os.Create(file)
	if err != nil {
		panic(err)
	}
	defer outfile.Close()
	outfile.Write(data)
}

func ReadJSONFromFile[T any](file string) T {
	_, err := os.Stat(file)
	if errors.Is(err, os.ErrNotExist) {
		panic("file not found: " + file)
	}

	data, _ := os.ReadFile(file)

	var value T
	json.Unmarshal(data, &value)

	return value
}
