package entity

// Company representa la entidad legal propiedad de un User.
// Acumula documentos, transacciones, inventario y activos fijos vía FK.
type Company struct {
	ID            string
	OwnerID       string
	Name          string
	LicenseNumber string
	TaxID         string
	IsFreeZone    bool   // free zone EAU: por defecto true
	BaseCurrency  string // "AED" por defecto
}
