package seeder

import appseeder "talent-match/internal/seeder"

func Defaults() []Seeder {
	return []Seeder{
		CatalogSeeder{Catalog: appseeder.SampleCatalog()},
	}
}
