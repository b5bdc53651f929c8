package dto

type CitiesResponse struct {
	Cities []string `json:"cities"`
}

type AreasResponse struct {
	Areas []string `json:"areas"`
}
