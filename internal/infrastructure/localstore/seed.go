package localstore

// Seed escribe los datos de ejemplo en el almacén, pisando lo que hubiera,
// y limpia la sesión activa. Lo usa cmd/seed para dejar la demo en estado inicial.
func Seed(s *Store) error {
	if err := s.Set(keyBookings, sampleBookings()); err != nil {
		return err
	}
	if err := s.Set(keyUsers, sampleUsers()); err != nil {
		return err
	}
	if err := s.Set(keyHotels, sampleHotels()); err != nil {
		return err
	}
	return s.Delete(keyCurrentUser)
}
