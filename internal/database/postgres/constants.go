package postgres

// PostgreSQL error codes and constraint names the repositories react to
const (
	pgCodeUniqueViolation = "23505"

	constraintVillageCoordinates = "villages_coordinates_key"
)
