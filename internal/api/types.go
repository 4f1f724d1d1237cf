package api

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lacarta/backend/internal/service"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	IsAdmin  bool   `json:"is_admin"`
}

type createDishRequest struct {
	Nombre       string   `json:"nombre" binding:"required"`
	Precio       float64  `json:"precio"`
	Descripcion  *string  `json:"descripcion"`
	PrecioUnidad *string  `json:"precio_unidad"`
	Sugerencias  bool     `json:"sugerencias"`
	CategoriaID  string   `json:"categoria_id" binding:"required,uuid"`
	AlergenoIDs  []string `json:"alergeno_ids"`
}

func (r createDishRequest) toInput() (service.CreateDishInput, error) {
	categoryID, err := uuid.Parse(r.CategoriaID)
	if err != nil {
		return service.CreateDishInput{}, fmt.Errorf("%w: categoria_id is not a valid id", service.ErrInvalidInput)
	}
	allergenIDs, err := parseIDs(r.AlergenoIDs, "alergeno_ids")
	if err != nil {
		return service.CreateDishInput{}, err
	}
	return service.CreateDishInput{
		Nombre:       r.Nombre,
		Precio:       decimal.NewFromFloat(r.Precio),
		Descripcion:  r.Descripcion,
		PrecioUnidad: r.PrecioUnidad,
		Sugerencias:  r.Sugerencias,
		CategoryID:   categoryID,
		AllergenIDs:  allergenIDs,
	}, nil
}

type updateDishRequest struct {
	Nombre       *string   `json:"nombre"`
	Precio       *float64  `json:"precio"`
	Descripcion  *string   `json:"descripcion"`
	PrecioUnidad *string   `json:"precio_unidad"`
	Sugerencias  *bool     `json:"sugerencias"`
	CategoriaID  *string   `json:"categoria_id"`
	AlergenoIDs  *[]string `json:"alergeno_ids"`
}

func (r updateDishRequest) toInput() (service.UpdateDishInput, error) {
	in := service.UpdateDishInput{
		Nombre:       r.Nombre,
		Descripcion:  r.Descripcion,
		PrecioUnidad: r.PrecioUnidad,
		Sugerencias:  r.Sugerencias,
	}
	if r.Precio != nil {
		p := decimal.NewFromFloat(*r.Precio)
		in.Precio = &p
	}
	if r.CategoriaID != nil {
		id, err := uuid.Parse(*r.CategoriaID)
		if err != nil {
			return service.UpdateDishInput{}, fmt.Errorf("%w: categoria_id is not a valid id", service.ErrInvalidInput)
		}
		in.CategoryID = &id
	}
	if r.AlergenoIDs != nil {
		ids, err := parseIDs(*r.AlergenoIDs, "alergeno_ids")
		if err != nil {
			return service.UpdateDishInput{}, err
		}
		in.AllergenIDs = &ids
	}
	return in, nil
}

type createWineRequest struct {
	Nombre               string   `json:"nombre" binding:"required"`
	Precio               float64  `json:"precio"`
	PrecioUnidad         *string  `json:"precio_unidad"`
	CategoriaID          string   `json:"categoria_id" binding:"required,uuid"`
	BodegaID             *string  `json:"bodega_id"`
	DenominacionOrigenID *string  `json:"denominacion_origen_id"`
	EnologoID            *string  `json:"enologo_id"`
	UvaIDs               []string `json:"uva_ids"`
}

func (r createWineRequest) toInput() (service.CreateWineInput, error) {
	categoryID, err := uuid.Parse(r.CategoriaID)
	if err != nil {
		return service.CreateWineInput{}, fmt.Errorf("%w: categoria_id is not a valid id", service.ErrInvalidInput)
	}
	wineryID, err := parseOptionalID(r.BodegaID, "bodega_id")
	if err != nil {
		return service.CreateWineInput{}, err
	}
	originID, err := parseOptionalID(r.DenominacionOrigenID, "denominacion_origen_id")
	if err != nil {
		return service.CreateWineInput{}, err
	}
	oenologistID, err := parseOptionalID(r.EnologoID, "enologo_id")
	if err != nil {
		return service.CreateWineInput{}, err
	}
	grapeIDs, err := parseIDs(r.UvaIDs, "uva_ids")
	if err != nil {
		return service.CreateWineInput{}, err
	}
	return service.CreateWineInput{
		Nombre:       r.Nombre,
		Precio:       decimal.NewFromFloat(r.Precio),
		PrecioUnidad: r.PrecioUnidad,
		CategoryID:   categoryID,
		WineryID:     wineryID,
		OriginID:     originID,
		OenologistID: oenologistID,
		GrapeIDs:     grapeIDs,
	}, nil
}

type updateWineRequest struct {
	Nombre               *string   `json:"nombre"`
	Precio               *float64  `json:"precio"`
	PrecioUnidad         *string   `json:"precio_unidad"`
	CategoriaID          *string   `json:"categoria_id"`
	BodegaID             *string   `json:"bodega_id"`
	DenominacionOrigenID *string   `json:"denominacion_origen_id"`
	EnologoID            *string   `json:"enologo_id"`
	UvaIDs               *[]string `json:"uva_ids"`
}

func (r updateWineRequest) toInput() (service.UpdateWineInput, error) {
	in := service.UpdateWineInput{
		Nombre:       r.Nombre,
		PrecioUnidad: r.PrecioUnidad,
	}
	if r.Precio != nil {
		p := decimal.NewFromFloat(*r.Precio)
		in.Precio = &p
	}
	if r.CategoriaID != nil {
		id, err := uuid.Parse(*r.CategoriaID)
		if err != nil {
			return service.UpdateWineInput{}, fmt.Errorf("%w: categoria_id is not a valid id", service.ErrInvalidInput)
		}
		in.CategoryID = &id
	}
	var err error
	if in.WineryID, err = parseOptionalID(r.BodegaID, "bodega_id"); err != nil {
		return service.UpdateWineInput{}, err
	}
	if in.OriginID, err = parseOptionalID(r.DenominacionOrigenID, "denominacion_origen_id"); err != nil {
		return service.UpdateWineInput{}, err
	}
	if in.OenologistID, err = parseOptionalID(r.EnologoID, "enologo_id"); err != nil {
		return service.UpdateWineInput{}, err
	}
	if r.UvaIDs != nil {
		ids, err := parseIDs(*r.UvaIDs, "uva_ids")
		if err != nil {
			return service.UpdateWineInput{}, err
		}
		in.GrapeIDs = &ids
	}
	return in, nil
}

type createLookupRequest struct {
	Nombre string `json:"nombre" binding:"required"`
	Region string `json:"region"`
}

type createOenologistRequest struct {
	Nombre          string `json:"nombre" binding:"required"`
	ExperienceYears int    `json:"experiencia_anos"`
}

type createGrapeVarietyRequest struct {
	Nombre string `json:"nombre" binding:"required"`
	Tipo   string `json:"tipo"`
}

// updateLookupRequest covers the name/region reference entities. Nil
// fields are left untouched.
type updateLookupRequest struct {
	Nombre *string `json:"nombre"`
	Region *string `json:"region"`
}

func (r updateLookupRequest) updates() (map[string]interface{}, error) {
	u := make(map[string]interface{})
	if r.Nombre != nil {
		if *r.Nombre == "" {
			return nil, fmt.Errorf("%w: nombre must not be empty", service.ErrInvalidInput)
		}
		u["nombre"] = *r.Nombre
	}
	if r.Region != nil {
		u["region"] = *r.Region
	}
	return u, nil
}

type updateOenologistRequest struct {
	Nombre          *string `json:"nombre"`
	ExperienceYears *int    `json:"experiencia_anos"`
}

func (r updateOenologistRequest) updates() (map[string]interface{}, error) {
	u := make(map[string]interface{})
	if r.Nombre != nil {
		if *r.Nombre == "" {
			return nil, fmt.Errorf("%w: nombre must not be empty", service.ErrInvalidInput)
		}
		u["nombre"] = *r.Nombre
	}
	if r.ExperienceYears != nil {
		if *r.ExperienceYears < 0 {
			return nil, fmt.Errorf("%w: experiencia_anos must not be negative", service.ErrInvalidInput)
		}
		u["experience_years"] = *r.ExperienceYears
	}
	return u, nil
}

type updateGrapeVarietyRequest struct {
	Nombre *string `json:"nombre"`
	Tipo   *string `json:"tipo"`
}

func (r updateGrapeVarietyRequest) updates() (map[string]interface{}, error) {
	u := make(map[string]interface{})
	if r.Nombre != nil {
		if *r.Nombre == "" {
			return nil, fmt.Errorf("%w: nombre must not be empty", service.ErrInvalidInput)
		}
		u["nombre"] = *r.Nombre
	}
	if r.Tipo != nil {
		u["tipo"] = *r.Tipo
	}
	return u, nil
}

func parseIDs(raw []string, field string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s contains an invalid id", service.ErrInvalidInput, field)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptionalID(raw *string, field string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid id", service.ErrInvalidInput, field)
	}
	return &id, nil
}
