// Package localstore implementa el almacén local de la demo: un archivo JSON
// clave/valor que hace de base de datos de un solo proceso (el equivalente
// servidor del localStorage del navegador).
//
// Contrato heredado de la fuente:
//   - cada escritura reescribe la colección completa (no hay appends parciales);
//   - datos ausentes o corruptos se reemplazan por datos de muestra, nunca se
//     propaga el error al caller — pero aquí el fallback SIEMPRE se loguea;
//   - un solo escritor lógico. El mutex elimina data races entre goroutines,
//     no la pérdida de actualizaciones entre procesos concurrentes: este
//     almacén no debe compartirse entre instancias.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/skarki/stayhub-api/pkg/logger"
)

// Claves del almacén (mismos nombres que la versión de navegador).
const (
	keyBookings    = "hotel_bookings"
	keyUsers       = "hotel_users"
	keyHotels      = "hotel_hotels"
	keyCurrentUser = "current_user"
)

// storeVersion etiqueta de esquema del archivo; la fuente no versionaba y
// cualquier cambio de forma rompía en silencio.
const storeVersion = 1

// envelope forma en disco: versión + mapa de colecciones serializadas.
type envelope struct {
	Version int                        `json:"version"`
	Data    map[string]json.RawMessage `json:"data"`
}

// Store archivo JSON clave/valor con acceso serializado por mutex.
type Store struct {
	path string
	log  *logger.Logger
	mu   sync.Mutex
}

// New crea el almacén sobre el archivo indicado. No toca el disco hasta la
// primera operación; un archivo inexistente equivale a un almacén vacío.
func New(path string, log *logger.Logger) *Store {
	return &Store{path: path, log: log}
}

// Get devuelve el valor crudo de una clave. ok=false si la clave no existe
// o si el archivo completo resultó ilegible (el caller decide el fallback).
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	env := s.load()
	raw, ok := env.Data[key]
	return raw, ok
}

// Set serializa v bajo la clave y reescribe el archivo completo.
func (s *Store) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	env := s.load()
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	env.Data[key] = raw
	return s.save(env)
}

// Delete elimina la clave y reescribe el archivo. Clave ausente no es error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	env := s.load()
	delete(env.Data, key)
	return s.save(env)
}

// Mutate ejecuta una lectura-modificación-escritura atómica sobre una clave:
// fn recibe el valor crudo actual (ok=false si no existe) y devuelve el valor
// nuevo a persistir. Todo ocurre bajo el mutex del almacén.
func (s *Store) Mutate(key string, fn func(raw json.RawMessage, ok bool) (any, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	env := s.load()
	raw, ok := env.Data[key]
	next, err := fn(raw, ok)
	if err != nil {
		return err
	}
	out, err := json.Marshal(next)
	if err != nil {
		return err
	}
	env.Data[key] = out
	return s.save(env)
}

// load lee y parsea el archivo. Ante archivo inexistente devuelve un envelope
// vacío; ante archivo ilegible también, pero deja constancia en el log (la
// fuente enmascaraba la corrupción sin diagnóstico alguno).
func (s *Store) load() envelope {
	empty := envelope{Version: storeVersion, Data: map[string]json.RawMessage{}}

	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("almacén ilegible, usando datos de muestra")
		}
		return empty
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("almacén corrupto, usando datos de muestra")
		return empty
	}
	if env.Data == nil {
		env.Data = map[string]json.RawMessage{}
	}
	env.Version = storeVersion
	return env
}

// save reescribe el archivo completo (escritura atómica vía rename).
func (s *Store) save(env envelope) error {
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
