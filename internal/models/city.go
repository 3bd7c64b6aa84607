package models

import "sort"

// City is an entry of the city registry.
type City struct {
	Name string
	File string
}

// Cities is the fixed registry of supported cities and their data files.
var Cities = []City{
	{Name: "chicago", File: "chicago.csv"},
	{Name: "new york city", File: "new_york_city.csv"},
	{Name: "washington", File: "washington.csv"},
}

// FindCity looks up a registry entry by its exact name.
func FindCity(name string) (City, bool) {
	for _, city := range Cities {
		if city.Name == name {
			return city, true
		}
	}
	return City{}, false
}

// CityNames returns the registry keys in alphabetical order.
func CityNames() []string {
	names := make([]string, 0, len(Cities))
	for _, city := range Cities {
		names = append(names, city.Name)
	}
	sort.Strings(names)
	return names
}
