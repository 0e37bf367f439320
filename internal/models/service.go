package models

import "time"

// ServiceStatus is the lifecycle state of a service demand.
// PUBLICADO → EN_EVALUACION → ASIGNADO → COMPLETADO.
type ServiceStatus string

const (
	StatusPublicado    ServiceStatus = "PUBLICADO"
	StatusEnEvaluacion ServiceStatus = "EN_EVALUACION"
	StatusAsignado     ServiceStatus = "ASIGNADO"
	StatusCompletado   ServiceStatus = "COMPLETADO"
)

// ServiceCategory classifies a demand.
type ServiceCategory string

const (
	CategoriaJardineria ServiceCategory = "jardineria"
	CategoriaPiscinas   ServiceCategory = "piscinas"
	CategoriaLimpieza   ServiceCategory = "limpieza"
	CategoriaOtros      ServiceCategory = "otros"
)

// RequiredSupply is a supply line a requester attaches to a demand.
type RequiredSupply struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// ServiceDemand is a published request for a service. It accumulates quotes
// until the requester selects one, at which point Estado becomes ASIGNADO and
// CotizacionSeleccionadaID references the winning quote.
type ServiceDemand struct {
	ID                       string           `json:"id"`
	SolicitanteID            string           `json:"solicitanteId"`
	Title                    string           `json:"title"`
	Description              string           `json:"description"`
	Categoria                ServiceCategory  `json:"categoria"`
	Direccion                string           `json:"direccion"`
	Ciudad                   string           `json:"ciudad"`
	FechaPreferida           time.Time        `json:"fechaPreferida"`
	InsumosRequeridos        []RequiredSupply `json:"insumosRequeridos"`
	Estado                   ServiceStatus    `json:"estado"`
	CotizacionSeleccionadaID string           `json:"cotizacionSeleccionadaId,omitempty"`
	CreatedAt                time.Time        `json:"createdAt"`
}
