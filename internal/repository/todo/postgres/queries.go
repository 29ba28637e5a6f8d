package postgres

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS todo_item (
				id SERIAL PRIMARY KEY,
				text TEXT NOT NULL,
				date_added TIMESTAMP WITH TIME ZONE NOT NULL,
				done BOOLEAN NOT NULL DEFAULT FALSE
			)`

	insertQuery = `INSERT INTO todo_item
				(text, date_added, done)
				VALUES ($1, $2, FALSE)`

	deleteByIDQuery = `DELETE FROM todo_item
				WHERE id = $1`

	markDoneByIDQuery = `UPDATE todo_item
				SET done = TRUE
			WHERE id = $1`

	listRecentQuery = `SELECT
				id,
				text,
				date_added,
				done
				FROM todo_item
				ORDER BY date_added DESC
				LIMIT $1`

	listRecentPendingQuery = `SELECT
				id,
				text,
				date_added,
				done
				FROM todo_item
				WHERE done = FALSE
				ORDER BY date_added DESC
				LIMIT $1`
)
