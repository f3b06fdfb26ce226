// Command unitsdemo prints a handful of measurement conversions and
// formatting examples for the Length, Temperature, Memory, Angle and
// Time kinds.
package main

import (
	"fmt"
	"log"

	"github.com/measurekit/units"
)

func main() {
	length, err := units.New(units.Length, 5, "mi")
	if err != nil {
		log.Fatal(err)
	}
	inMetres, err := length.To("m")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(length.ToString(), "=", inMetres.ToString())

	boiling, err := units.New(units.Temperature, 100, "C")
	if err != nil {
		log.Fatal(err)
	}
	fahrenheit, err := boiling.To("F")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(boiling.ToString(), "=", fahrenheit.ToString())

	download, err := units.New(units.Memory, 1.5, "GiB")
	if err != nil {
		log.Fatal(err)
	}
	megabits, err := download.To("Mb")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(download.ToString(), "=", megabits.ToString())

	angle, err := units.New(units.Angle, 45.504194, "deg")
	if err != nil {
		log.Fatal(err)
	}
	dms, err := units.FormatParts(angle, "arcsec", 1, true)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(angle.ToString(), "=", dms)

	duration, err := units.FromParts(units.Time, 2, 15, 30, 0)
	if err != nil {
		log.Fatal(err)
	}
	spec, err := units.ToDateIntervalSpecifier(duration, "s")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(duration.ToString(), "=", spec)
}
