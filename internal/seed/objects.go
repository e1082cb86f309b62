package seed

import (
	"astrofolio/internal/models"
)

// catalogPresets are the reference catalogs known to the importer and UI.
var catalogPresets = []models.Catalog{
	{Name: "Messier", Code: "M", Description: "Charles Messier's catalog of 110 bright deep-sky objects"},
	{Name: "New General Catalogue", Code: "NGC", Description: "Dreyer's New General Catalogue of nebulae and star clusters"},
	{Name: "Index Catalogue", Code: "IC", Description: "Index Catalogue supplements to the NGC"},
	{Name: "Caldwell", Code: "C", Description: "Patrick Moore's catalog of bright objects missed by Messier"},
	{Name: "Sharpless", Code: "Sh2", Description: "Sharpless catalog of HII emission regions"},
}

// objectPreset describes one curated object row. Catalog is the code of the
// catalog the row belongs to; the alternate designation columns carry the
// cross-reference data the resolver walks.
type objectPreset struct {
	Catalog       string
	Designation   string
	Messier       string
	NGC           string
	IC            string
	Caldwell      string
	Sharpless     string
	ObjectType    string
	Constellation string
	RAHours       float64
	DecDegrees    float64
	Magnitude     float64
	Size          string
	Distance      string
	CommonNames   string
}

// objectPresets is a curated slice of real objects. Several physical objects
// appear under more than one catalog row so the cross-reference resolver has
// real data to chew on (e.g. M31 and NGC 224 are the same galaxy).
var objectPresets = []objectPreset{
	{
		Catalog: "M", Designation: "M31", Messier: "M31", NGC: "NGC 224",
		ObjectType: "galaxy", Constellation: "Andromeda",
		RAHours: 0.712, DecDegrees: 41.269, Magnitude: 3.4,
		Size: "178x63 arcmin", Distance: "2.54 Mly",
		CommonNames: "Andromeda Galaxy",
	},
	{
		Catalog: "NGC", Designation: "NGC 224", Messier: "M31", NGC: "NGC 224",
		ObjectType: "galaxy", Constellation: "Andromeda",
		RAHours: 0.712, DecDegrees: 41.269, Magnitude: 3.4,
		Size: "178x63 arcmin", Distance: "2.54 Mly",
		CommonNames: "Andromeda Galaxy",
	},
	{
		Catalog: "M", Designation: "M42", Messier: "M42", NGC: "NGC 1976",
		ObjectType: "nebula", Constellation: "Orion",
		RAHours: 5.588, DecDegrees: -5.391, Magnitude: 4.0,
		Size: "85x60 arcmin", Distance: "1.34 kly",
		CommonNames: "Orion Nebula, Great Nebula in Orion",
	},
	{
		Catalog: "NGC", Designation: "NGC 1976", Messier: "M42", NGC: "NGC 1976",
		ObjectType: "nebula", Constellation: "Orion",
		RAHours: 5.588, DecDegrees: -5.391, Magnitude: 4.0,
		Size: "85x60 arcmin", Distance: "1.34 kly",
		CommonNames: "Orion Nebula",
	},
	{
		Catalog: "M", Designation: "M45", Messier: "M45",
		ObjectType: "open cluster", Constellation: "Taurus",
		RAHours: 3.790, DecDegrees: 24.117, Magnitude: 1.6,
		Size: "110 arcmin", Distance: "444 ly",
		CommonNames: "Pleiades, Seven Sisters",
	},
	{
		Catalog: "M", Designation: "M1", Messier: "M1", NGC: "NGC 1952",
		ObjectType: "supernova remnant", Constellation: "Taurus",
		RAHours: 5.575, DecDegrees: 22.015, Magnitude: 8.4,
		Size: "6x4 arcmin", Distance: "6.5 kly",
		CommonNames: "Crab Nebula",
	},
	{
		Catalog: "NGC", Designation: "NGC 1952", Messier: "M1", NGC: "NGC 1952",
		ObjectType: "supernova remnant", Constellation: "Taurus",
		RAHours: 5.575, DecDegrees: 22.015, Magnitude: 8.4,
		Size: "6x4 arcmin", Distance: "6.5 kly",
		CommonNames: "Crab Nebula",
	},
	{
		Catalog: "M", Designation: "M51", Messier: "M51", NGC: "NGC 5194",
		ObjectType: "galaxy", Constellation: "Canes Venatici",
		RAHours: 13.497, DecDegrees: 47.195, Magnitude: 8.4,
		Size: "11x7 arcmin", Distance: "23 Mly",
		CommonNames: "Whirlpool Galaxy",
	},
	{
		Catalog: "NGC", Designation: "NGC 7000", NGC: "NGC 7000", Caldwell: "C20", Sharpless: "Sh2-117",
		ObjectType: "nebula", Constellation: "Cygnus",
		RAHours: 20.988, DecDegrees: 44.333, Magnitude: 4.0,
		Size: "120x100 arcmin", Distance: "2.59 kly",
		CommonNames: "North America Nebula",
	},
	{
		Catalog: "C", Designation: "C20", NGC: "NGC 7000", Caldwell: "C20", Sharpless: "Sh2-117",
		ObjectType: "nebula", Constellation: "Cygnus",
		RAHours: 20.988, DecDegrees: 44.333, Magnitude: 4.0,
		Size: "120x100 arcmin", Distance: "2.59 kly",
		CommonNames: "North America Nebula",
	},
	{
		Catalog: "IC", Designation: "IC 434", IC: "IC 434",
		ObjectType: "nebula", Constellation: "Orion",
		RAHours: 5.683, DecDegrees: -2.458, Magnitude: 7.3,
		Size: "60x10 arcmin", Distance: "1.5 kly",
		CommonNames: "Horsehead Nebula region",
	},
	{
		Catalog: "M", Designation: "M104", Messier: "M104", NGC: "NGC 4594",
		ObjectType: "galaxy", Constellation: "Virgo",
		RAHours: 12.666, DecDegrees: -11.623, Magnitude: 8.0,
		Size: "9x4 arcmin", Distance: "31 Mly",
		CommonNames: "Sombrero Galaxy",
	},
	{
		Catalog: "Sh2", Designation: "Sh2-155", Sharpless: "Sh2-155",
		ObjectType: "nebula", Constellation: "Cepheus",
		RAHours: 22.578, DecDegrees: 62.617, Magnitude: 7.7,
		Size: "50x30 arcmin", Distance: "2.4 kly",
		CommonNames: "Cave Nebula",
	},
}

// equipmentPresets back the autocomplete endpoint with realistic gear.
var equipmentPresets = []models.Equipment{
	{Type: "telescope", Brand: "Sky-Watcher", Model: "Esprit 100ED", Name: "Sky-Watcher Esprit 100ED", Specs: "100mm f/5.5 apochromatic refractor"},
	{Type: "telescope", Brand: "William Optics", Model: "RedCat 51", Name: "William Optics RedCat 51", Specs: "51mm f/4.9 Petzval astrograph"},
	{Type: "telescope", Brand: "Celestron", Model: "EdgeHD 8", Name: "Celestron EdgeHD 8", Specs: "203mm f/10 aplanatic Schmidt-Cassegrain"},
	{Type: "telescope", Brand: "Takahashi", Model: "FSQ-106EDX4", Name: "Takahashi FSQ-106EDX4", Specs: "106mm f/5 quadruplet refractor"},
	{Type: "camera", Brand: "ZWO", Model: "ASI2600MC Pro", Name: "ZWO ASI2600MC Pro", Specs: "APS-C color CMOS, cooled"},
	{Type: "camera", Brand: "ZWO", Model: "ASI1600MM Pro", Name: "ZWO ASI1600MM Pro", Specs: "4/3 mono CMOS, cooled"},
	{Type: "camera", Brand: "Canon", Model: "EOS Ra", Name: "Canon EOS Ra", Specs: "Full-frame mirrorless, astro-modified"},
	{Type: "mount", Brand: "Sky-Watcher", Model: "EQ6-R Pro", Name: "Sky-Watcher EQ6-R Pro", Specs: "20kg payload German equatorial"},
	{Type: "mount", Brand: "iOptron", Model: "CEM40", Name: "iOptron CEM40", Specs: "18kg payload center-balanced equatorial"},
	{Type: "filter", Brand: "Optolong", Model: "L-eXtreme", Name: "Optolong L-eXtreme", Specs: "Dual 7nm Ha/OIII narrowband"},
	{Type: "filter", Brand: "Astronomik", Model: "Ha 6nm", Name: "Astronomik Ha 6nm", Specs: "6nm hydrogen-alpha narrowband"},
}
