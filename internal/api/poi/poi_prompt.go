package poi

import "fmt"

func GetPlaceDescriptionPrompt(placeName string) string {
	return fmt.Sprintf("Provide a short description for a place named '%s'.", placeName)
}
