package postgresosm

import "strconv"

// formatOSMID переводит osm_id из osm2pgsql в id вида way/N или relation/N:
// мультиполигоны-отношения хранятся с отрицательным id.
func formatOSMID(osmID int64) string {
	if osmID < 0 {
		return "relation/" + strconv.FormatInt(-osmID, 10)
	}
	return "way/" + strconv.FormatInt(osmID, 10)
}
