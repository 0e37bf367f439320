// Package seed holds the fixed demo dataset used whenever no persisted
// snapshot exists or a persisted snapshot fails validation.
package seed

import (
	"time"

	"serviciosmarket/core/internal/models"
)

func daysFromNow(days int) time.Time {
	return time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)
}

func daysAgo(days int) time.Time {
	return daysFromNow(-days)
}

// Users returns the static authentication principals. Passwords are mock
// plaintext constants.
func Users() []models.User {
	return []models.User{
		{
			ID:           "usr-01",
			Name:         "María González",
			Email:        "maria@cliente.com",
			Role:         models.RoleSolicitante,
			Organization: "Ministerio de Salud",
			AvatarColor:  "#2563eb",
			Password:     "solicitante123",
		},
		{
			ID:           "usr-02",
			Name:         "Luis Fernández",
			Email:        "luis@infra.com",
			Role:         models.RoleProveedorServicio,
			Organization: "InfraWorks",
			AvatarColor:  "#16a34a",
			Password:     "proveedor123",
		},
		{
			ID:           "usr-03",
			Name:         "Ana Ribeiro",
			Email:        "ana@insumos.co",
			Role:         models.RoleProveedorInsumos,
			Organization: "Insumos del Sur",
			AvatarColor:  "#f97316",
			Password:     "insumos123",
		},
	}
}

// Services returns the seed service demands.
func Services() []models.ServiceDemand {
	return []models.ServiceDemand{
		{
			ID:             "srv-01",
			SolicitanteID:  "usr-01",
			Title:          "Mantenimiento integral de centros de salud",
			Description:    "Servicio de mantenimiento preventivo y correctivo para 5 centros de salud regionales, incluyendo calibración de equipos básicos.",
			Categoria:      models.CategoriaLimpieza,
			Direccion:      "Av. 18 de Julio 1234",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(15),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-01", Name: "Kit de limpieza avanzada", Quantity: 12, Unit: "kits"},
				{ID: "sup-02", Name: "Filtros HEPA", Quantity: 24, Unit: "unidades"},
				{ID: "sup-05", Name: "Lubricante médico", Quantity: 18, Unit: "botellas"},
			},
			Estado:    models.StatusEnEvaluacion,
			CreatedAt: daysAgo(5),
		},
		{
			ID:             "srv-02",
			SolicitanteID:  "usr-01",
			Title:          "Actualización de cableado estructurado",
			Description:    "Reemplazo de cableado categoría 5e por categoría 6A en oficinas administrativas.",
			Categoria:      models.CategoriaOtros,
			Direccion:      "Ruta 5 km 45",
			Ciudad:         "Canelones",
			FechaPreferida: daysFromNow(30),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-07", Name: "Cable categoría 6A", Quantity: 1200, Unit: "metros"},
				{ID: "sup-09", Name: "Bandejas portacable", Quantity: 80, Unit: "unidades"},
			},
			Estado:    models.StatusEnEvaluacion,
			CreatedAt: daysAgo(3),
		},
		{
			ID:             "srv-03",
			SolicitanteID:  "usr-01",
			Title:          "Programa de gestión de residuos clínicos",
			Description:    "Implementación de protocolos y recolección semanal de residuos peligrosos.",
			Categoria:      models.CategoriaLimpieza,
			Direccion:      "Calle Real 567",
			Ciudad:         "Colonia",
			FechaPreferida: daysFromNow(20),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-03", Name: "Contenedores bioseguridad 30L", Quantity: 60, Unit: "unidades"},
				{ID: "sup-04", Name: "Bolsas rojas reforzadas", Quantity: 300, Unit: "unidades"},
			},
			Estado:                   models.StatusAsignado,
			CotizacionSeleccionadaID: "qte-01",
			CreatedAt:                daysAgo(10),
		},
		{
			ID:             "srv-04",
			SolicitanteID:  "usr-01",
			Title:          "Mantenimiento y limpieza de piscinas comunitarias",
			Description:    "Servicio mensual de limpieza, tratamiento químico y mantenimiento de 3 piscinas comunitarias durante temporada estival.",
			Categoria:      models.CategoriaPiscinas,
			Direccion:      "Av. Rivera 890",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(10),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-10", Name: "Cloro granulado", Quantity: 50, Unit: "kg"},
				{ID: "sup-11", Name: "Filtros de arena", Quantity: 6, Unit: "unidades"},
				{ID: "sup-12", Name: "Químicos balanceadores", Quantity: 30, Unit: "litros"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(2),
		},
		{
			ID:             "srv-05",
			SolicitanteID:  "usr-01",
			Title:          "Diseño y mantenimiento de jardines institucionales",
			Description:    "Diseño paisajístico y mantenimiento mensual de jardines en edificio gubernamental, incluyendo poda, riego y fertilización.",
			Categoria:      models.CategoriaJardineria,
			Direccion:      "Bvar. Artigas 1234",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(25),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-13", Name: "Fertilizante orgánico", Quantity: 200, Unit: "kg"},
				{ID: "sup-14", Name: "Plantas ornamentales", Quantity: 150, Unit: "unidades"},
				{ID: "sup-15", Name: "Sistema de riego por goteo", Quantity: 1, Unit: "sistema"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(1),
		},
		{
			ID:             "srv-06",
			SolicitanteID:  "usr-01",
			Title:          "Limpieza profunda de oficinas administrativas",
			Description:    "Limpieza profunda mensual de 8 pisos de oficinas, incluyendo alfombras, ventanas y sanitarios.",
			Categoria:      models.CategoriaLimpieza,
			Direccion:      "Av. Libertador 567",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(18),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-16", Name: "Detergente industrial", Quantity: 100, Unit: "litros"},
				{ID: "sup-17", Name: "Aspiradoras industriales", Quantity: 4, Unit: "unidades"},
				{ID: "sup-18", Name: "Paños de microfibra", Quantity: 200, Unit: "unidades"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(4),
		},
		{
			ID:             "srv-07",
			SolicitanteID:  "usr-01",
			Title:          "Instalación de sistema de seguridad perimetral",
			Description:    "Instalación de cámaras, sensores y sistema de alarmas para perímetro de edificio gubernamental.",
			Categoria:      models.CategoriaOtros,
			Direccion:      "Ruta 1 km 25",
			Ciudad:         "San José",
			FechaPreferida: daysFromNow(35),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-19", Name: "Cámaras IP", Quantity: 12, Unit: "unidades"},
				{ID: "sup-20", Name: "Cable de red", Quantity: 500, Unit: "metros"},
				{ID: "sup-21", Name: "Sensores de movimiento", Quantity: 8, Unit: "unidades"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(6),
		},
		{
			ID:             "srv-08",
			SolicitanteID:  "usr-01",
			Title:          "Limpieza y mantenimiento de áreas verdes",
			Description:    "Mantenimiento semanal de áreas verdes, poda de árboles y arbustos, y limpieza de senderos en parque público.",
			Categoria:      models.CategoriaJardineria,
			Direccion:      "Parque Rodó",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(12),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-13", Name: "Fertilizante orgánico", Quantity: 150, Unit: "kg"},
				{ID: "sup-14", Name: "Plantas ornamentales", Quantity: 80, Unit: "unidades"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(8),
		},
		{
			ID:             "srv-09",
			SolicitanteID:  "usr-01",
			Title:          "Renovación de piscina olímpica",
			Description:    "Renovación completa de piscina olímpica: limpieza, reparación de azulejos, instalación de nuevo sistema de filtración y tratamiento de agua.",
			Categoria:      models.CategoriaPiscinas,
			Direccion:      "Complejo Deportivo Municipal",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(45),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-10", Name: "Cloro granulado", Quantity: 200, Unit: "kg"},
				{ID: "sup-11", Name: "Filtros de arena", Quantity: 12, Unit: "unidades"},
				{ID: "sup-12", Name: "Químicos balanceadores", Quantity: 100, Unit: "litros"},
				{ID: "sup-24", Name: "Pintura Epoxi", Quantity: 80, Unit: "litros"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(7),
		},
		{
			ID:             "srv-10",
			SolicitanteID:  "usr-01",
			Title:          "Limpieza post-obra de edificio nuevo",
			Description:    "Limpieza exhaustiva post-construcción de edificio de 10 pisos, incluyendo eliminación de residuos, limpieza de ventanas y preparación para ocupación.",
			Categoria:      models.CategoriaLimpieza,
			Direccion:      "Av. Italia 3456",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(20),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-16", Name: "Detergente industrial", Quantity: 300, Unit: "litros"},
				{ID: "sup-17", Name: "Aspiradoras industriales", Quantity: 8, Unit: "unidades"},
				{ID: "sup-18", Name: "Paños de microfibra", Quantity: 500, Unit: "unidades"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(9),
		},
		{
			ID:             "srv-11",
			SolicitanteID:  "usr-01",
			Title:          "Instalación de sistema de riego automatizado",
			Description:    "Instalación de sistema completo de riego automatizado con sensores de humedad para campo deportivo de 5000 m².",
			Categoria:      models.CategoriaJardineria,
			Direccion:      "Estadio Municipal",
			Ciudad:         "Canelones",
			FechaPreferida: daysFromNow(28),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-15", Name: "Sistema de riego por goteo", Quantity: 2, Unit: "sistemas"},
				{ID: "sup-13", Name: "Fertilizante orgánico", Quantity: 300, Unit: "kg"},
			},
			Estado:    models.StatusEnEvaluacion,
			CreatedAt: daysAgo(12),
		},
		{
			ID:             "srv-12",
			SolicitanteID:  "usr-01",
			Title:          "Mantenimiento preventivo de piscinas comunitarias",
			Description:    "Servicio trimestral de mantenimiento preventivo para 5 piscinas comunitarias, incluyendo análisis de agua y ajuste de químicos.",
			Categoria:      models.CategoriaPiscinas,
			Direccion:      "Complejo Habitacional",
			Ciudad:         "Maldonado",
			FechaPreferida: daysFromNow(15),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-10", Name: "Cloro granulado", Quantity: 100, Unit: "kg"},
				{ID: "sup-12", Name: "Químicos balanceadores", Quantity: 60, Unit: "litros"},
			},
			Estado:    models.StatusEnEvaluacion,
			CreatedAt: daysAgo(11),
		},
		{
			ID:             "srv-13",
			SolicitanteID:  "usr-01",
			Title:          "Limpieza y desinfección de espacios comunes",
			Description:    "Limpieza profunda y desinfección de espacios comunes en edificio de oficinas: pasillos, ascensores, recepción y baños.",
			Categoria:      models.CategoriaLimpieza,
			Direccion:      "Torre Empresarial",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(8),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-05", Name: "Kit de limpieza avanzada", Quantity: 20, Unit: "kits"},
				{ID: "sup-06", Name: "Filtros HEPA", Quantity: 30, Unit: "unidades"},
				{ID: "sup-16", Name: "Detergente industrial", Quantity: 150, Unit: "litros"},
			},
			Estado:                   models.StatusAsignado,
			CotizacionSeleccionadaID: "qte-07",
			CreatedAt:                daysAgo(14),
		},
		{
			ID:             "srv-14",
			SolicitanteID:  "usr-01",
			Title:          "Diseño paisajístico de plaza pública",
			Description:    "Diseño completo y ejecución de proyecto paisajístico para plaza pública, incluyendo plantación de árboles, arbustos y sistema de iluminación.",
			Categoria:      models.CategoriaJardineria,
			Direccion:      "Plaza Independencia",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(40),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-14", Name: "Plantas ornamentales", Quantity: 300, Unit: "unidades"},
				{ID: "sup-13", Name: "Fertilizante orgánico", Quantity: 400, Unit: "kg"},
				{ID: "sup-15", Name: "Sistema de riego por goteo", Quantity: 1, Unit: "sistema"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(13),
		},
		{
			ID:             "srv-15",
			SolicitanteID:  "usr-01",
			Title:          "Reparación y mantenimiento de sistema eléctrico",
			Description:    "Reparación de instalación eléctrica y actualización de tableros en edificio administrativo de 6 pisos.",
			Categoria:      models.CategoriaOtros,
			Direccion:      "Av. 8 de Octubre 2345",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(22),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-03", Name: "Cable Eléctrico THW calibre 12", Quantity: 2000, Unit: "metros"},
				{ID: "sup-27", Name: "Cable THW calibre 10", Quantity: 500, Unit: "metros"},
				{ID: "sup-04", Name: "Luminarias LED 18W", Quantity: 200, Unit: "unidad"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(15),
		},
		{
			ID:             "srv-16",
			SolicitanteID:  "usr-01",
			Title:          "Limpieza de tanques de agua potable",
			Description:    "Limpieza y desinfección de tanques de agua potable en 3 edificios públicos, incluyendo certificación sanitaria.",
			Categoria:      models.CategoriaLimpieza,
			Direccion:      "Complejo Gubernamental",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(14),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-05", Name: "Kit de limpieza avanzada", Quantity: 15, Unit: "kits"},
				{ID: "sup-22", Name: "Contenedores bioseguridad 30L", Quantity: 20, Unit: "unidades"},
			},
			Estado:                   models.StatusCompletado,
			CotizacionSeleccionadaID: "qte-01",
			CreatedAt:                daysAgo(60),
		},
		{
			ID:             "srv-17",
			SolicitanteID:  "usr-01",
			Title:          "Mantenimiento de jardines verticales",
			Description:    "Mantenimiento mensual de jardines verticales en fachada de edificio, incluyendo poda, riego y fertilización.",
			Categoria:      models.CategoriaJardineria,
			Direccion:      "Edificio Corporativo",
			Ciudad:         "Montevideo",
			FechaPreferida: daysFromNow(16),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-13", Name: "Fertilizante orgánico", Quantity: 100, Unit: "kg"},
				{ID: "sup-14", Name: "Plantas ornamentales", Quantity: 50, Unit: "unidades"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(16),
		},
		{
			ID:             "srv-18",
			SolicitanteID:  "usr-01",
			Title:          "Instalación de sistema de monitoreo de calidad de agua",
			Description:    "Instalación de sistema automatizado de monitoreo de calidad de agua en piscinas públicas con alertas en tiempo real.",
			Categoria:      models.CategoriaPiscinas,
			Direccion:      "Centro Deportivo",
			Ciudad:         "Punta del Este",
			FechaPreferida: daysFromNow(32),
			InsumosRequeridos: []models.RequiredSupply{
				{ID: "sup-19", Name: "Cámaras IP", Quantity: 4, Unit: "unidades"},
				{ID: "sup-20", Name: "Cable de red", Quantity: 200, Unit: "metros"},
				{ID: "sup-12", Name: "Químicos balanceadores", Quantity: 50, Unit: "litros"},
			},
			Estado:    models.StatusPublicado,
			CreatedAt: daysAgo(17),
		},
	}
}

// Quotes returns the seed quotes.
func Quotes() []models.Quote {
	return []models.Quote{
		{
			ID:           "qte-01",
			ServiceID:    "srv-01",
			ProviderID:   "usr-02",
			ProviderName: "InfraWorks",
			TotalPrice:   39800,
			Currency:     "USD",
			LeadTimeDays: 14,
			Rating:       4.8,
			Message:      "Incluimos supervisión onsite y reporte semanal.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-01", Name: "Kit de limpieza avanzada", Quantity: 12, Unit: "kits", Price: 9600, Currency: "USD"},
				{ID: "sup-02", Name: "Filtros HEPA", Quantity: 24, Unit: "unidades", Price: 11200, Currency: "USD"},
				{ID: "man-01", Name: "Mano de obra especializada", Quantity: 160, Unit: "horas", Price: 19000, Currency: "USD"},
			},
		},
		{
			ID:           "qte-02",
			ServiceID:    "srv-01",
			ProviderID:   "prov-02",
			ProviderName: "TecnoCare",
			TotalPrice:   1490000,
			Currency:     "UYU",
			LeadTimeDays: 16,
			Rating:       4.5,
			Message:      "Propuesta optimizada con calibración digital incluida.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-01", Name: "Kit de limpieza avanzada", Quantity: 12, Unit: "kits", Price: 372000, Currency: "UYU"},
				{ID: "sup-02", Name: "Filtros HEPA", Quantity: 24, Unit: "unidades", Price: 440000, Currency: "UYU"},
				{ID: "ops-01", Name: "Supervisión senior", Quantity: 5, Unit: "visitas", Price: 212000, Currency: "UYU"},
				{ID: "man-02", Name: "Técnicos certificados", Quantity: 150, Unit: "horas", Price: 466000, Currency: "UYU"},
			},
		},
		{
			ID:           "qte-03",
			ServiceID:    "srv-01",
			ProviderID:   "prov-03",
			ProviderName: "ProMedical",
			TotalPrice:   37720,
			Currency:     "EUR",
			LeadTimeDays: 12,
			Rating:       4.9,
			Message:      "Mayor cobertura de garantías a 12 meses.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-01", Name: "Kit de limpieza avanzada", Quantity: 12, Unit: "kits", Price: 9108, Currency: "EUR"},
				{ID: "sup-02", Name: "Filtros HEPA", Quantity: 24, Unit: "unidades", Price: 10396, Currency: "EUR"},
				{ID: "sup-05", Name: "Lubricante médico", Quantity: 18, Unit: "botellas", Price: 2944, Currency: "EUR"},
				{ID: "man-03", Name: "Equipo onsite", Quantity: 175, Unit: "horas", Price: 15172, Currency: "EUR"},
			},
		},
		{
			ID:           "qte-04",
			ServiceID:    "srv-02",
			ProviderID:   "usr-02",
			ProviderName: "InfraWorks",
			TotalPrice:   21500,
			Currency:     "USD",
			LeadTimeDays: 28,
			Rating:       4.2,
			Message:      "Incluye certificación Fluke y pruebas de estrés.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-07", Name: "Cable categoría 6A", Quantity: 1200, Unit: "metros", Price: 13800, Currency: "USD"},
				{ID: "sup-09", Name: "Bandejas portacable", Quantity: 80, Unit: "unidades", Price: 4300, Currency: "USD"},
				{ID: "man-05", Name: "Equipo de instalación", Quantity: 120, Unit: "horas", Price: 3400, Currency: "USD"},
			},
		},
		{
			ID:           "qte-05",
			ServiceID:    "srv-04",
			ProviderID:   "usr-02",
			ProviderName: "InfraWorks",
			TotalPrice:   12500,
			Currency:     "USD",
			LeadTimeDays: 7,
			Rating:       4.6,
			Message:      "Incluimos análisis de agua semanal y reportes mensuales.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-10", Name: "Cloro granulado", Quantity: 50, Unit: "kg", Price: 2500, Currency: "USD"},
				{ID: "sup-11", Name: "Filtros de arena", Quantity: 6, Unit: "unidades", Price: 4800, Currency: "USD"},
				{ID: "sup-12", Name: "Químicos balanceadores", Quantity: 30, Unit: "litros", Price: 1200, Currency: "USD"},
				{ID: "man-06", Name: "Mantenimiento mensual", Quantity: 6, Unit: "visitas", Price: 4000, Currency: "USD"},
			},
		},
		{
			ID:           "qte-06",
			ServiceID:    "srv-05",
			ProviderID:   "usr-02",
			ProviderName: "InfraWorks",
			TotalPrice:   8500,
			Currency:     "USD",
			LeadTimeDays: 20,
			Rating:       4.7,
			Message:      "Diseño personalizado con plantas nativas y sistema de riego automatizado.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-13", Name: "Fertilizante orgánico", Quantity: 200, Unit: "kg", Price: 1800, Currency: "USD"},
				{ID: "sup-14", Name: "Plantas ornamentales", Quantity: 150, Unit: "unidades", Price: 4500, Currency: "USD"},
				{ID: "sup-15", Name: "Sistema de riego por goteo", Quantity: 1, Unit: "sistema", Price: 2200, Currency: "USD"},
			},
		},
		{
			ID:           "qte-07",
			ServiceID:    "srv-06",
			ProviderID:   "usr-02",
			ProviderName: "InfraWorks",
			TotalPrice:   6800,
			Currency:     "USD",
			LeadTimeDays: 5,
			Rating:       4.4,
			Message:      "Equipo especializado con productos ecológicos y certificación de calidad.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-16", Name: "Detergente industrial", Quantity: 100, Unit: "litros", Price: 800, Currency: "USD"},
				{ID: "sup-17", Name: "Aspiradoras industriales", Quantity: 4, Unit: "unidades", Price: 3200, Currency: "USD"},
				{ID: "sup-18", Name: "Paños de microfibra", Quantity: 200, Unit: "unidades", Price: 400, Currency: "USD"},
				{ID: "man-07", Name: "Personal de limpieza", Quantity: 240, Unit: "horas", Price: 2400, Currency: "USD"},
			},
		},
		{
			ID:           "qte-08",
			ServiceID:    "srv-04",
			ProviderID:   "prov-05",
			ProviderName: "AquaClean",
			TotalPrice:   11800,
			Currency:     "USD",
			LeadTimeDays: 10,
			Rating:       4.3,
			Message:      "Servicio completo con análisis de agua incluido y garantía de calidad.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-10", Name: "Cloro granulado", Quantity: 50, Unit: "kg", Price: 2400, Currency: "USD"},
				{ID: "sup-11", Name: "Filtros de arena", Quantity: 6, Unit: "unidades", Price: 4600, Currency: "USD"},
				{ID: "sup-12", Name: "Químicos balanceadores", Quantity: 30, Unit: "litros", Price: 1100, Currency: "USD"},
				{ID: "man-08", Name: "Mantenimiento y análisis", Quantity: 6, Unit: "visitas", Price: 3700, Currency: "USD"},
			},
		},
		{
			ID:           "qte-09",
			ServiceID:    "srv-05",
			ProviderID:   "prov-06",
			ProviderName: "GreenSpace",
			TotalPrice:   9200,
			Currency:     "USD",
			LeadTimeDays: 25,
			Rating:       4.6,
			Message:      "Diseño sostenible con plantas autóctonas y sistema de riego inteligente.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-13", Name: "Fertilizante orgánico", Quantity: 200, Unit: "kg", Price: 2000, Currency: "USD"},
				{ID: "sup-14", Name: "Plantas ornamentales", Quantity: 150, Unit: "unidades", Price: 4800, Currency: "USD"},
				{ID: "sup-15", Name: "Sistema de riego por goteo", Quantity: 1, Unit: "sistema", Price: 2400, Currency: "USD"},
			},
		},
		{
			ID:           "qte-10",
			ServiceID:    "srv-06",
			ProviderID:   "prov-07",
			ProviderName: "CleanPro",
			TotalPrice:   7200,
			Currency:     "USD",
			LeadTimeDays: 6,
			Rating:       4.5,
			Message:      "Limpieza profunda con productos certificados y personal capacitado.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-16", Name: "Detergente industrial", Quantity: 100, Unit: "litros", Price: 850, Currency: "USD"},
				{ID: "sup-17", Name: "Aspiradoras industriales", Quantity: 4, Unit: "unidades", Price: 3400, Currency: "USD"},
				{ID: "sup-18", Name: "Paños de microfibra", Quantity: 200, Unit: "unidades", Price: 450, Currency: "USD"},
				{ID: "man-09", Name: "Personal especializado", Quantity: 240, Unit: "horas", Price: 2500, Currency: "USD"},
			},
		},
		{
			ID:           "qte-11",
			ServiceID:    "srv-07",
			ProviderID:   "usr-02",
			ProviderName: "InfraWorks",
			TotalPrice:   18500,
			Currency:     "USD",
			LeadTimeDays: 30,
			Rating:       4.7,
			Message:      "Sistema completo con monitoreo remoto y app móvil incluida.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-19", Name: "Cámaras IP", Quantity: 12, Unit: "unidades", Price: 4200, Currency: "USD"},
				{ID: "sup-20", Name: "Cable de red", Quantity: 500, Unit: "metros", Price: 750, Currency: "USD"},
				{ID: "sup-21", Name: "Sensores de movimiento", Quantity: 8, Unit: "unidades", Price: 960, Currency: "USD"},
				{ID: "man-10", Name: "Instalación y configuración", Quantity: 80, Unit: "horas", Price: 8600, Currency: "USD"},
			},
		},
		{
			ID:           "qte-12",
			ServiceID:    "srv-07",
			ProviderID:   "prov-08",
			ProviderName: "SecureTech",
			TotalPrice:   17200,
			Currency:     "USD",
			LeadTimeDays: 28,
			Rating:       4.4,
			Message:      "Instalación profesional con garantía extendida de 2 años.",
			SuppliesBreakdown: []models.QuoteLine{
				{ID: "sup-19", Name: "Cámaras IP", Quantity: 12, Unit: "unidades", Price: 3960, Currency: "USD"},
				{ID: "sup-20", Name: "Cable de red", Quantity: 500, Unit: "metros", Price: 700, Currency: "USD"},
				{ID: "sup-21", Name: "Sensores de movimiento", Quantity: 8, Unit: "unidades", Price: 920, Currency: "USD"},
				{ID: "man-11", Name: "Instalación certificada", Quantity: 80, Unit: "horas", Price: 8620, Currency: "USD"},
			},
		},
	}
}

// Supplies returns the seed catalog.
func Supplies() []models.Supply {
	return []models.Supply{
		{ID: "sup-01", Name: "Cemento Portland", Unit: "kg", Stock: 500, Price: 15.5, Currency: "USD", Category: "Construcción", Description: "Cemento de alta calidad para construcción"},
		{ID: "sup-02", Name: "Pintura Látex Blanca", Unit: "litros", Stock: 200, Price: 25, Currency: "USD", Category: "Pintura", Description: "Pintura interior de alta cobertura"},
		{ID: "sup-03", Name: "Cable Eléctrico THW calibre 12", Unit: "metros", Stock: 1000, Price: 20, Currency: "USD", Category: "Electricidad", Description: "Cable para instalaciones eléctricas residenciales"},
		{ID: "sup-04", Name: "Luminarias LED 18W", Unit: "unidad", Stock: 150, Price: 150, Currency: "USD", Category: "Electricidad", Description: "Lámparas de bajo consumo con luz blanca"},
		{ID: "sup-05", Name: "Kit de limpieza avanzada", Unit: "kits", Stock: 50, Price: 800, Currency: "USD", Category: "Limpieza", Description: "Kit completo con productos profesionales"},
		{ID: "sup-06", Name: "Filtros HEPA", Unit: "unidades", Stock: 100, Price: 450, Currency: "USD", Category: "Limpieza", Description: "Filtros de alta eficiencia para sistemas de aire"},
		{ID: "sup-07", Name: "Cable categoría 6A", Unit: "metros", Stock: 2000, Price: 11.5, Currency: "USD", Category: "Tecnología", Description: "Cable de red de alta velocidad"},
		{ID: "sup-08", Name: "Lubricante médico", Unit: "botellas", Stock: 80, Price: 165, Currency: "USD", Category: "Mantenimiento", Description: "Lubricante especializado para equipos médicos"},
		{ID: "sup-09", Name: "Bandejas portacable", Unit: "unidades", Stock: 200, Price: 54, Currency: "USD", Category: "Tecnología", Description: "Bandejas metálicas para organización de cables"},
		{ID: "sup-10", Name: "Cloro granulado", Unit: "kg", Stock: 300, Price: 50, Currency: "USD", Category: "Piscinas", Description: "Cloro estabilizado para piscinas"},
		{ID: "sup-11", Name: "Filtros de arena", Unit: "unidades", Stock: 40, Price: 800, Currency: "USD", Category: "Piscinas", Description: "Filtros de arena para sistemas de piscina"},
		{ID: "sup-12", Name: "Químicos balanceadores", Unit: "litros", Stock: 150, Price: 40, Currency: "USD", Category: "Piscinas", Description: "Kit de químicos para balance de pH y alcalinidad"},
		{ID: "sup-13", Name: "Fertilizante orgánico", Unit: "kg", Stock: 500, Price: 9, Currency: "USD", Category: "Jardinería", Description: "Fertilizante orgánico de liberación lenta"},
		{ID: "sup-14", Name: "Plantas ornamentales", Unit: "unidades", Stock: 300, Price: 30, Currency: "USD", Category: "Jardinería", Description: "Plantas ornamentales variadas para jardín"},
		{ID: "sup-15", Name: "Sistema de riego por goteo", Unit: "sistema", Stock: 20, Price: 2200, Currency: "USD", Category: "Jardinería", Description: "Sistema completo de riego automatizado"},
		{ID: "sup-16", Name: "Detergente industrial", Unit: "litros", Stock: 200, Price: 8, Currency: "USD", Category: "Limpieza", Description: "Detergente concentrado para limpieza profesional"},
		{ID: "sup-17", Name: "Aspiradoras industriales", Unit: "unidades", Stock: 15, Price: 800, Currency: "USD", Category: "Limpieza", Description: "Aspiradoras de alto rendimiento para uso profesional"},
		{ID: "sup-18", Name: "Paños de microfibra", Unit: "unidades", Stock: 500, Price: 2, Currency: "USD", Category: "Limpieza", Description: "Paños de microfibra reutilizables"},
		{ID: "sup-19", Name: "Cámaras IP", Unit: "unidades", Stock: 50, Price: 350, Currency: "USD", Category: "Seguridad", Description: "Cámaras de seguridad IP con visión nocturna"},
		{ID: "sup-20", Name: "Cable de red", Unit: "metros", Stock: 1000, Price: 1.5, Currency: "USD", Category: "Tecnología", Description: "Cable de red categoría 5e"},
		{ID: "sup-21", Name: "Sensores de movimiento", Unit: "unidades", Stock: 60, Price: 120, Currency: "USD", Category: "Seguridad", Description: "Sensores PIR para detección de movimiento"},
		{ID: "sup-22", Name: "Contenedores bioseguridad 30L", Unit: "unidades", Stock: 100, Price: 45, Currency: "USD", Category: "Limpieza", Description: "Contenedores para residuos peligrosos"},
		{ID: "sup-23", Name: "Bolsas rojas reforzadas", Unit: "unidades", Stock: 500, Price: 3.5, Currency: "USD", Category: "Limpieza", Description: "Bolsas para residuos biológicos"},
		{ID: "sup-24", Name: "Pintura Epoxi", Unit: "litros", Stock: 150, Price: 45, Currency: "USD", Category: "Pintura", Description: "Pintura epoxi para superficies industriales"},
		{ID: "sup-25", Name: "Cemento rápido", Unit: "kg", Stock: 300, Price: 22, Currency: "USD", Category: "Construcción", Description: "Cemento de fraguado rápido"},
		{ID: "sup-26", Name: "Lámparas LED 36W", Unit: "unidad", Stock: 200, Price: 85, Currency: "USD", Category: "Electricidad", Description: "Lámparas LED de mayor potencia"},
		{ID: "sup-27", Name: "Cable THW calibre 10", Unit: "metros", Stock: 800, Price: 28, Currency: "USD", Category: "Electricidad", Description: "Cable eléctrico de mayor calibre"},
	}
}
