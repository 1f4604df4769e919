package seeder

func Defaults() []Seeder {
	return []Seeder{
		ClientsSeeder{},
		FreelancersSeeder{},
	}
}
