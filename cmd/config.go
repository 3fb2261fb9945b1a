package cmd

// Config carries the environment-driven settings of the service.
// VehicleCapacityPolicy selects how declared vehicle capacities are checked:
// "strict" requires the standard pair for the vehicle type, "freeform"
// accepts any pair within the fleet-wide bounds.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	VehicleCapacityPolicy string
}
