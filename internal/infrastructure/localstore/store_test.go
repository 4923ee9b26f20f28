package localstore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/repository"
	"github.com/skarki/stayhub-api/internal/infrastructure/localstore"
	"github.com/skarki/stayhub-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newTestStore(t *testing.T) (*localstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stayhub.json")
	return localstore.New(path, logger.Nop()), path
}

func nuevaReserva() *entity.Booking {
	return &entity.Booking{
		HotelID:     "1",
		HotelName:   "Grand Himalaya Hotel",
		Location:    "Thamel, Kathmandu",
		RoomType:    "Deluxe Room",
		Guests:      2,
		Rooms:       1,
		TotalAmount: decimal.NewFromInt(31365),
		Status:      entity.BookingPending,
		GuestName:   "Asha Rai",
		GuestEmail:  "asha@email.com",
		GuestPhone:  "+977-9800000000",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BookingRepository
// ──────────────────────────────────────────────────────────────────────────────

// Sin archivo persistido, la colección son los datos de muestra.
func TestBookingRepository_SinArchivoDevuelveMuestra(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewBookingRepository(store, logger.Nop())

	list, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, list, 3, "deben venir las 3 reservas de muestra")
	assert.Equal(t, "HTB123456", list[0].ID)
	assert.Equal(t, "john.doe@email.com", list[0].GuestEmail)
}

func TestBookingRepository_AddAnteponeYAsignaID(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewBookingRepository(store, logger.Nop())

	stored, err := repo.Add(nuevaReserva())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.ID, "HTB"), "la referencia empieza con HTB, fue %s", stored.ID)
	assert.Len(t, stored.ID, 9, "HTB + 6 dígitos del reloj")
	assert.False(t, stored.CreatedAt.IsZero(), "CreatedAt debe quedar asignado")

	list, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, list, 4, "la nueva reserva se suma a las de muestra")
	assert.Equal(t, stored.ID, list[0].ID, "la reserva nueva va primero")
}

func TestBookingRepository_UpdateFundeElPatch(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewBookingRepository(store, logger.Nop())

	stored, err := repo.Add(nuevaReserva())
	require.NoError(t, err)

	status := entity.BookingConfirmed
	txn := "ESW1710500000000123"
	merged, err := repo.Update(stored.ID, repository.BookingPatch{Status: &status, TransactionID: &txn})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingConfirmed, merged.Status)
	assert.Equal(t, txn, merged.TransactionID)
	assert.Equal(t, "Asha Rai", merged.GuestName, "los campos sin patch se conservan")

	// El cambio quedó persistido.
	again, err := repo.GetByID(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, again.Status)
}

// Un id inexistente no escribe nada: la colección queda igual.
func TestBookingRepository_UpdateIDInexistente(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewBookingRepository(store, logger.Nop())

	status := entity.BookingCancelled
	_, err := repo.Update("HTB000000", repository.BookingPatch{Status: &status})
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	list, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, list, 3, "la colección de muestra no debe cambiar")
}

func TestBookingRepository_ListByGuestEmail(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewBookingRepository(store, logger.Nop())

	list, err := repo.ListByGuestEmail("JOHN.DOE@email.com")
	require.NoError(t, err)
	assert.Len(t, list, 3, "el filtro por email es case-insensitive")

	vacia, err := repo.ListByGuestEmail("nadie@email.com")
	require.NoError(t, err)
	assert.Empty(t, vacia)
}

// ──────────────────────────────────────────────────────────────────────────────
// Archivo corrupto: fallback a datos de muestra, nunca error
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_ArchivoCorruptoUsaMuestra(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("esto no es JSON{{"), 0o644))

	repo := localstore.NewBookingRepository(store, logger.Nop())
	list, err := repo.GetAll()
	require.NoError(t, err, "la corrupción no se propaga al caller")
	assert.Len(t, list, 3, "se usan los datos de muestra")
}

func TestStore_ColeccionCorruptaUsaMuestra(t *testing.T) {
	store, _ := newTestStore(t)
	// La clave existe pero su contenido no es una lista de reservas.
	require.NoError(t, store.Set("hotel_bookings", "no soy una lista"))

	repo := localstore.NewBookingRepository(store, logger.Nop())
	list, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// UserRepository / HotelRepository
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepository_FindByEmailAusente(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewUserRepository(store, logger.Nop())

	u, err := repo.FindByEmail("nadie@email.com")
	require.NoError(t, err, "email ausente no es error")
	assert.Nil(t, u)

	existente, err := repo.FindByEmail("JANE@email.com")
	require.NoError(t, err)
	require.NotNil(t, existente, "la búsqueda es case-insensitive")
	assert.Equal(t, "Jane Smith", existente.Name)
}

func TestUserRepository_AddAsignaUUID(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewUserRepository(store, logger.Nop())

	u, err := repo.Add(&entity.User{Name: "Asha", Email: "asha@email.com", Role: entity.RoleUser})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	list, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, list, 4, "3 de muestra + 1 nuevo")
}

func TestHotelRepository_DeleteEsIdempotente(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewHotelRepository(store, logger.Nop())

	require.NoError(t, repo.Delete("1"))
	list, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Borrar de nuevo el mismo id (o uno inexistente) no es error.
	assert.NoError(t, repo.Delete("1"))
	assert.NoError(t, repo.Delete("no-existe"))

	list, err = repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, list, 2, "la colección no cambia en el segundo borrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionRepository
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionRepository_CicloDeSesion(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewSessionRepository(store, logger.Nop())

	// Sin sesión: nil, nil.
	u, err := repo.GetCurrentUser()
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, repo.SetCurrentUser(&entity.User{ID: "7", Name: "Asha", Email: "asha@email.com"}))

	u, err = repo.GetCurrentUser()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "asha@email.com", u.Email)

	// nil limpia el puntero.
	require.NoError(t, repo.SetCurrentUser(nil))
	u, err = repo.GetCurrentUser()
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSessionRepository_SesionCorruptaSeDescarta(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Set("current_user", []int{1, 2, 3}))

	repo := localstore.NewSessionRepository(store, logger.Nop())
	u, err := repo.GetCurrentUser()
	require.NoError(t, err, "la copia ilegible equivale a no tener sesión")
	assert.Nil(t, u)
}

// ──────────────────────────────────────────────────────────────────────────────
// Seed
// ──────────────────────────────────────────────────────────────────────────────

func TestSeed_DejaElEstadoInicial(t *testing.T) {
	store, path := newTestStore(t)
	sessionRepo := localstore.NewSessionRepository(store, logger.Nop())
	require.NoError(t, sessionRepo.SetCurrentUser(&entity.User{ID: "7", Email: "asha@email.com"}))

	require.NoError(t, localstore.Seed(store))

	_, err := os.Stat(path)
	require.NoError(t, err, "el seed escribe el archivo")

	bookings, err := localstore.NewBookingRepository(store, logger.Nop()).GetAll()
	require.NoError(t, err)
	assert.Len(t, bookings, 3)

	u, err := sessionRepo.GetCurrentUser()
	require.NoError(t, err)
	assert.Nil(t, u, "el seed limpia la sesión")
}
