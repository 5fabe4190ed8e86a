package entity

import "strings"

// Image is the unit carried by Upload and Download. Data holds encoded
// image bytes (PNG, JPEG, ...) and is opaque until decoded.
type Image struct {
	Name string
	Data []byte
}

func (i Image) IsEmpty() bool {
	return len(i.Data) == 0
}

// ShortName returns the segment after the last path separator.
func (i Image) ShortName() string {
	if idx := strings.LastIndexAny(i.Name, `/\`); idx >= 0 {
		return i.Name[idx+1:]
	}
	return i.Name
}

// Clone returns a copy that does not share Data with i.
func (i Image) Clone() Image {
	data := make([]byte, len(i.Data))
	copy(data, i.Data)
	return Image{Name: i.Name, Data: data}
}
