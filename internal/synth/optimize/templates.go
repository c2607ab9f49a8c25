package optimize

const connectionPoolTemplate = `import { Pool } from 'pg';

export const pool = new Pool({
  connectionString: process.env.DATABASE_URL,
  max: Number(process.env.DB_POOL_MAX ?? 20),
  idleTimeoutMillis: 30_000,
  connectionTimeoutMillis: 5_000,
});

pool.on('error', (err) => {
  console.error('idle client error', err.message);
});

export async function healthCheck(): Promise<boolean> {
  try {
    const result = await pool.query('SELECT 1 AS ok');
    return result.rows[0].ok === 1;
  } catch {
    return false;
  }
}

export async function shutdown(): Promise<void> {
  await pool.end();
}

process.on('SIGTERM', () => void shutdown());
process.on('SIGINT', () => void shutdown());
`

const queryHelpersTemplate = `import { pool } from '../config/database';

export interface WhereClause {
  text: string;
  values: unknown[];
}

// buildWhere composes a parameterized WHERE clause from filter pairs,
// skipping undefined values.
export function buildWhere(filters: Record<string, unknown>): WhereClause {
  const parts: string[] = [];
  const values: unknown[] = [];
  for (const [column, value] of Object.entries(filters)) {
    if (value === undefined) continue;
    values.push(value);
    parts.push(` + "`" + `${column} = $${values.length}` + "`" + `);
  }
  return { text: parts.length ? 'WHERE ' + parts.join(' AND ') : '', values };
}

export interface Page<T> {
  items: T[];
  total: number;
  page: number;
  pageSize: number;
}

export async function paginate<T>(
  baseQuery: string,
  values: unknown[],
  page = 1,
  pageSize = 25
): Promise<Page<T>> {
  const countResult = await pool.query(
    ` + "`" + `SELECT count(*) AS total FROM (${baseQuery}) AS sub` + "`" + `,
    values
  );
  const offset = (page - 1) * pageSize;
  const result = await pool.query(
    ` + "`" + `${baseQuery} LIMIT $${values.length + 1} OFFSET $${values.length + 2}` + "`" + `,
    [...values, pageSize, offset]
  );
  return { items: result.rows, total: Number(countResult.rows[0].total), page, pageSize };
}

// orderBy only accepts allow-listed columns; anything else falls back to the
// first allowed column to keep injection impossible.
export function orderBy(column: string, allowed: string[], direction: 'asc' | 'desc' = 'asc'): string {
  const safe = allowed.includes(column) ? column : allowed[0];
  return ` + "`" + `ORDER BY ${safe} ${direction === 'desc' ? 'DESC' : 'ASC'}` + "`" + `;
}

export async function batchInsert(
  table: string,
  columns: string[],
  rows: unknown[][]
): Promise<number> {
  if (rows.length === 0) return 0;
  const values: unknown[] = [];
  const tuples = rows.map((row) => {
    const placeholders = row.map((v) => {
      values.push(v);
      return ` + "`" + `$${values.length}` + "`" + `;
    });
    return ` + "`" + `(${placeholders.join(', ')})` + "`" + `;
  });
  const result = await pool.query(
    ` + "`" + `INSERT INTO ${table} (${columns.join(', ')}) VALUES ${tuples.join(', ')}` + "`" + `,
    values
  );
  return result.rowCount ?? 0;
}

export async function fullTextSearch<T>(
  table: string,
  columns: string[],
  query: string,
  limit = 20
): Promise<T[]> {
  const vector = columns.map((c) => ` + "`" + `coalesce(${c}, '')` + "`" + `).join(" || ' ' || ");
  const result = await pool.query(
    ` + "`" + `SELECT *, ts_rank(to_tsvector('english', ${vector}), plainto_tsquery('english', $1)) AS rank
     FROM ${table}
     WHERE to_tsvector('english', ${vector}) @@ plainto_tsquery('english', $1)
     ORDER BY rank DESC LIMIT $2` + "`" + `,
    [query, limit]
  );
  return result.rows;
}

export async function explain(query: string, values: unknown[] = []): Promise<string[]> {
  const result = await pool.query(` + "`" + `EXPLAIN ANALYZE ${query}` + "`" + `, values);
  return result.rows.map((row) => row['QUERY PLAN']);
}
`

const cacheTemplate = `interface Entry<T> {
  value: T;
  expiresAt: number;
}

// In-memory TTL cache with pattern invalidation and hit-rate tracking.
export class MemoryCache<T = unknown> {
  private entries = new Map<string, Entry<T>>();
  private hits = 0;
  private misses = 0;

  constructor(private defaultTtlMillis = 60_000) {}

  get(key: string): T | undefined {
    const entry = this.entries.get(key);
    if (!entry || entry.expiresAt < Date.now()) {
      if (entry) this.entries.delete(key);
      this.misses++;
      return undefined;
    }
    this.hits++;
    return entry.value;
  }

  set(key: string, value: T, ttlMillis?: number): void {
    this.entries.set(key, {
      value,
      expiresAt: Date.now() + (ttlMillis ?? this.defaultTtlMillis),
    });
  }

  delete(key: string): void {
    this.entries.delete(key);
  }

  // invalidatePattern removes every key containing the given substring,
  // e.g. invalidatePattern('task:') after a task mutation.
  invalidatePattern(pattern: string): number {
    let removed = 0;
    for (const key of this.entries.keys()) {
      if (key.includes(pattern)) {
        this.entries.delete(key);
        removed++;
      }
    }
    return removed;
  }

  hitRate(): number {
    const total = this.hits + this.misses;
    return total === 0 ? 0 : this.hits / total;
  }

  size(): number {
    return this.entries.size;
  }
}

export const cache = new MemoryCache();
`

const maintenanceTemplate = `import { pool } from '../config/database';

export interface TableSize {
  table: string;
  totalBytes: number;
  rowEstimate: number;
}

export async function tableSizes(): Promise<TableSize[]> {
  const result = await pool.query(
    ` + "`" + `SELECT relname AS table,
            pg_total_relation_size(c.oid) AS total_bytes,
            c.reltuples::bigint AS row_estimate
     FROM pg_class c
     JOIN pg_namespace n ON n.oid = c.relnamespace
     WHERE n.nspname = 'public' AND c.relkind = 'r'
     ORDER BY pg_total_relation_size(c.oid) DESC` + "`" + `
  );
  return result.rows.map((row) => ({
    table: row.table,
    totalBytes: Number(row.total_bytes),
    rowEstimate: Number(row.row_estimate),
  }));
}

export async function slowQueries(limit = 10): Promise<unknown[]> {
  const result = await pool.query(
    ` + "`" + `SELECT query, calls, mean_exec_time, total_exec_time
     FROM pg_stat_statements
     ORDER BY mean_exec_time DESC LIMIT $1` + "`" + `,
    [limit]
  );
  return result.rows;
}

export async function terminateIdleConnections(idleMinutes = 30): Promise<number> {
  const result = await pool.query(
    ` + "`" + `SELECT pg_terminate_backend(pid) FROM pg_stat_activity
     WHERE state = 'idle'
       AND state_change < now() - make_interval(mins => $1)
       AND pid <> pg_backend_pid()` + "`" + `,
    [idleMinutes]
  );
  return result.rowCount ?? 0;
}

// missingIndexes flags sequentially-scanned tables large enough that an
// index would likely pay for itself.
export async function missingIndexes(): Promise<unknown[]> {
  const result = await pool.query(
    ` + "`" + `SELECT relname AS table, seq_scan, idx_scan, n_live_tup
     FROM pg_stat_user_tables
     WHERE seq_scan > idx_scan * 10 AND n_live_tup > 10000
     ORDER BY seq_scan DESC` + "`" + `
  );
  return result.rows;
}
`
