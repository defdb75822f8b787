package postgres

import (
	"context"
	"fmt"
)

// Schema kept compatible with the historical deployment: same table and
// column names, server-assigned SERIAL ids. Every statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS visitante (
		id SERIAL PRIMARY KEY,
		nome TEXT NOT NULL,
		genero TEXT NOT NULL,
		email TEXT NOT NULL,
		telefone TEXT NOT NULL,
		endereco TEXT NOT NULL,
		qtd_pessoas INTEGER,
		data DATE NOT NULL,
		turno TEXT NOT NULL,
		horario_chegada TEXT,
		duracao TEXT,
		observacao TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS escola (
		id SERIAL PRIMARY KEY,
		nome_escola TEXT NOT NULL,
		representante TEXT NOT NULL,
		email TEXT NOT NULL,
		telefone TEXT NOT NULL,
		endereco TEXT NOT NULL,
		num_alunos INTEGER,
		data DATE NOT NULL,
		turno TEXT NOT NULL,
		horario_chegada TEXT,
		duracao TEXT,
		observacao TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS ies (
		id SERIAL PRIMARY KEY,
		nome_ies TEXT NOT NULL,
		representante TEXT NOT NULL,
		email TEXT NOT NULL,
		telefone TEXT NOT NULL,
		endereco TEXT NOT NULL,
		num_alunos INTEGER,
		data DATE NOT NULL,
		turno TEXT NOT NULL,
		horario_chegada TEXT,
		duracao TEXT,
		observacao TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS pesquisador (
		id SERIAL PRIMARY KEY,
		nome TEXT NOT NULL,
		genero TEXT NOT NULL,
		email TEXT NOT NULL,
		telefone TEXT NOT NULL,
		instituicao TEXT NOT NULL,
		pesquisa TEXT NOT NULL,
		data DATE NOT NULL,
		turno TEXT NOT NULL,
		horario_chegada TEXT,
		duracao TEXT,
		observacao TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		ativo INTEGER DEFAULT 1
	)`,
}

// Init creates the tables if they do not exist.
func (r *Repository) Init(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: Init - create table: %v", ErrExecQuery, err)
		}
	}
	return nil
}
