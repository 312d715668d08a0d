package geo

import (
	"math"
	"strings"
)

// Approximate coordinates of major Brazilian cities.
var cityCoords = map[string]Coordinates{
	"são paulo-SP":              {-23.5505, -46.6333},
	"rio de janeiro-RJ":         {-22.9068, -43.1729},
	"belo horizonte-MG":         {-19.9191, -43.9386},
	"brasília-DF":               {-15.7801, -47.9292},
	"salvador-BA":               {-12.9714, -38.5014},
	"fortaleza-CE":              {-3.7319, -38.5267},
	"recife-PE":                 {-8.0476, -34.8770},
	"porto alegre-RS":           {-30.0346, -51.2177},
	"curitiba-PR":               {-25.4284, -49.2733},
	"manaus-AM":                 {-3.1190, -60.0217},
	"belém-PA":                  {-1.4558, -48.5044},
	"goiânia-GO":                {-16.6869, -49.2648},
	"campinas-SP":               {-22.9099, -47.0626},
	"são bernardo do campo-SP":  {-23.6914, -46.5646},
	"guarulhos-SP":              {-23.4538, -46.5333},
	"osasco-SP":                 {-23.5329, -46.7918},
	"carapicuíba-SP":            {-23.5223, -46.8356},
	"itapecerica da serra-SP":   {-23.7169, -46.8503},
	"são roque-SP":              {-23.5284, -47.1367},
	"nova iguaçu-RJ":            {-22.7591, -43.4509},
	"são gonçalo-RJ":            {-22.8267, -43.0537},
	"duque de caxias-RJ":        {-22.7856, -43.3117},
	"natal-RN":                  {-5.7945, -35.2110},
	"maceió-AL":                 {-9.6658, -35.7353},
	"campo grande-MS":           {-20.4697, -54.6201},
	"joão pessoa-PB":            {-7.1195, -34.8450},
	"teresina-PI":               {-5.0892, -42.8019},
	"são luís-MA":               {-2.5297, -44.3028},
	"aracaju-SE":                {-10.9472, -37.0731},
	"cuiabá-MT":                 {-15.6014, -56.0979},
	"florianópolis-SC":          {-27.5954, -48.5480},
	"vitória-ES":                {-20.3155, -40.3128},
	"palmas-TO":                 {-10.1689, -48.3317},
	"macapá-AP":                 {0.0389, -51.0664},
	"boa vista-RR":              {2.8235, -60.6758},
	"rio branco-AC":             {-9.9755, -67.8243},
}

// State geographic centers.
var stateCoords = map[string]Coordinates{
	"AC": {-8.77, -70.55}, "AL": {-9.71, -35.73}, "AP": {1.41, -51.77},
	"AM": {-3.07, -61.66}, "BA": {-12.96, -38.51}, "CE": {-3.71, -38.54},
	"DF": {-15.83, -47.86}, "ES": {-19.19, -40.34}, "GO": {-16.64, -49.31},
	"MA": {-2.55, -44.30}, "MT": {-12.64, -55.42}, "MS": {-20.51, -54.54},
	"MG": {-18.10, -44.38}, "PA": {-5.53, -52.29}, "PB": {-7.06, -35.55},
	"PR": {-24.89, -51.55}, "PE": {-8.28, -35.07}, "PI": {-8.28, -45.24},
	"RJ": {-22.84, -43.15}, "RN": {-5.22, -36.52}, "RS": {-30.01, -51.22},
	"RO": {-11.22, -62.80}, "RR": {1.89, -61.22}, "SC": {-27.33, -49.44},
	"SP": {-23.55, -46.64}, "SE": {-10.90, -37.07}, "TO": {-10.25, -48.25},
}

// Geographic center of Brazil, the last-resort fallback.
var brazilCenter = Coordinates{-14.235, -51.9253}

func cityCoordinates(city, state string) *Coordinates {
	key := strings.ToLower(strings.TrimSpace(city)) + "-" + strings.ToUpper(strings.TrimSpace(state))
	if c, ok := cityCoords[key]; ok {
		return &Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
	}
	if c, ok := stateCoords[strings.ToUpper(strings.TrimSpace(state))]; ok {
		return &Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
	}
	return &Coordinates{Latitude: brazilCenter.Latitude, Longitude: brazilCenter.Longitude}
}

// fallbackCoordinates maps a CEP to its state by the first digit region
// when the lookup service is unreachable.
func fallbackCoordinates(cep string) *Coordinates {
	regionStates := map[byte]string{
		'0': "SP", '1': "SP", '2': "RJ", '3': "MG", '4': "BA",
		'5': "PE", '6': "CE", '7': "DF", '8': "PR", '9': "RS",
	}
	state, ok := regionStates[cep[0]]
	if !ok {
		return &Coordinates{Latitude: brazilCenter.Latitude, Longitude: brazilCenter.Longitude}
	}
	c := stateCoords[state]
	return &Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

// Distance returns the haversine distance between two points in kilometers.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
