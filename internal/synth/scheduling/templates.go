package scheduling

const jobTypesTemplate = `export interface ScheduledJob {
  name: string;
  // Five-field cron cadence, e.g. '0 8 * * *' for daily at 08:00.
  cadence: string;
  description: string;
  handler: () => Promise<void>;
}

export interface JobRun {
  jobName: string;
  startedAt: Date;
  finishedAt: Date | null;
  error: string | null;
}

export interface QueueMessage {
  id: string;
  kind: string;
  payload: Record<string, unknown>;
  attempts: number;
  enqueuedAt: Date;
}
`

const schedulerTemplate = `import { ScheduledJob, JobRun } from './types';

// Central job scheduler. Registration-only; jobs are defined in their own
// modules. One job's failure never deregisters others.
export class Scheduler {
  private jobs = new Map<string, ScheduledJob>();
  private timers = new Map<string, NodeJS.Timeout>();
  private history: JobRun[] = [];

  register(job: ScheduledJob): void {
    if (this.jobs.has(job.name)) {
      throw new Error(` + "`" + `job ${job.name} is already registered` + "`" + `);
    }
    this.jobs.set(job.name, job);
  }

  start(): void {
    for (const job of this.jobs.values()) {
      const interval = cadenceToMillis(job.cadence);
      const timer = setInterval(() => void this.runJob(job.name), interval);
      this.timers.set(job.name, timer);
    }
  }

  stop(): void {
    for (const timer of this.timers.values()) clearInterval(timer);
    this.timers.clear();
  }

  // Manual single-job trigger for operational use.
  async runJob(name: string): Promise<JobRun> {
    const job = this.jobs.get(name);
    if (!job) throw new Error(` + "`" + `unknown job: ${name}` + "`" + `);
    const run: JobRun = { jobName: name, startedAt: new Date(), finishedAt: null, error: null };
    try {
      await job.handler();
    } catch (err) {
      // Isolate the failure; the schedule for every other job is untouched.
      run.error = err instanceof Error ? err.message : String(err);
      console.error(` + "`" + `job ${name} failed: ${run.error}` + "`" + `);
    } finally {
      run.finishedAt = new Date();
      this.history.push(run);
    }
    return run;
  }

  listJobs(): ScheduledJob[] {
    return Array.from(this.jobs.values());
  }

  recentRuns(limit = 50): JobRun[] {
    return this.history.slice(-limit);
  }
}

// Coarse cadence mapping; a production deployment would swap in a real cron
// parser without touching registration.
function cadenceToMillis(cadence: string): number {
  if (cadence.startsWith('*/')) {
    const minutes = Number(cadence.split(' ')[0].slice(2));
    if (Number.isFinite(minutes) && minutes > 0) return minutes * 60_000;
  }
  if (cadence.startsWith('0 * ')) return 60 * 60_000;
  return 24 * 60 * 60_000;
}

export const scheduler = new Scheduler();
`

const queueProcessorTemplate = `import { pool } from '../config/database';
import { QueueMessage } from './types';

type Handler = (message: QueueMessage) => Promise<void>;

const handlers = new Map<string, Handler>();
const MAX_ATTEMPTS = 5;

export function registerHandler(kind: string, handler: Handler): void {
  handlers.set(kind, handler);
}

export async function processQueue(batchSize = 20): Promise<number> {
  const result = await pool.query(
    ` + "`" + `SELECT id, kind, payload, attempts, enqueued_at FROM job_queue
     WHERE processed_at IS NULL AND attempts < $1
     ORDER BY enqueued_at ASC LIMIT $2` + "`" + `,
    [MAX_ATTEMPTS, batchSize]
  );

  let processed = 0;
  for (const row of result.rows) {
    const message: QueueMessage = {
      id: row.id,
      kind: row.kind,
      payload: typeof row.payload === 'string' ? JSON.parse(row.payload) : row.payload,
      attempts: row.attempts,
      enqueuedAt: row.enqueued_at,
    };
    const handler = handlers.get(message.kind);
    if (!handler) {
      await pool.query('UPDATE job_queue SET attempts = $1 WHERE id = $2', [MAX_ATTEMPTS, message.id]);
      continue;
    }
    try {
      await handler(message);
      await pool.query('UPDATE job_queue SET processed_at = now() WHERE id = $1', [message.id]);
      processed++;
    } catch (err) {
      await pool.query('UPDATE job_queue SET attempts = attempts + 1 WHERE id = $1', [message.id]);
      console.error(` + "`" + `queue message ${message.id} failed: ${err}` + "`" + `);
    }
  }
  return processed;
}
`

const notificationJobsTemplate = `import { pool } from '../config/database';
import { ScheduledJob } from './types';
import { scheduler } from './scheduler';

export const dueDateReminders: ScheduledJob = {
  name: 'due_date_reminders',
  cadence: '0 8 * * *',
  description: 'Notify assignees of tasks due within 24 hours',
  handler: async () => {
    await pool.query(
      ` + "`" + `INSERT INTO notifications (user_id, type, payload)
       SELECT assignee_id, 'due_date_reminder', json_build_object('task_id', id)
       FROM tasks
       WHERE assignee_id IS NOT NULL
         AND status <> 'completed'
         AND due_date BETWEEN now() AND now() + interval '24 hours'` + "`" + `
    );
  },
};

export const digestDelivery: ScheduledJob = {
  name: 'notification_digest',
  cadence: '0 18 * * *',
  description: 'Deliver a daily digest of unread notifications',
  handler: async () => {
    await pool.query(
      ` + "`" + `SELECT user_id, count(*) FROM notifications
       WHERE is_read = false GROUP BY user_id` + "`" + `
    );
  },
};

scheduler.register(dueDateReminders);
scheduler.register(digestDelivery);
`

const cleanupJobsTemplate = `import { pool } from '../config/database';
import { ScheduledJob } from './types';
import { scheduler } from './scheduler';

export const purgeReadNotifications: ScheduledJob = {
  name: 'purge_read_notifications',
  cadence: '0 3 * * *',
  description: 'Delete notifications read more than 30 days ago',
  handler: async () => {
    await pool.query(
      "DELETE FROM notifications WHERE is_read = true AND read_at < now() - interval '30 days'"
    );
  },
};

export const purgeOrphanedShares: ScheduledJob = {
  name: 'purge_orphaned_shares',
  cadence: '0 4 * * 0',
  description: 'Remove share rows for deleted tasks',
  handler: async () => {
    await pool.query(
      'DELETE FROM task_shares WHERE task_id NOT IN (SELECT id FROM tasks)'
    );
  },
};

scheduler.register(purgeReadNotifications);
scheduler.register(purgeOrphanedShares);
`

const reportJobsTemplate = `import { pool } from '../config/database';
import { ScheduledJob } from './types';
import { scheduler } from './scheduler';

export const weeklyActivityReport: ScheduledJob = {
  name: 'weekly_activity_report',
  cadence: '0 7 * * 1',
  description: 'Summarize tasks created and completed in the last week',
  handler: async () => {
    await pool.query(
      ` + "`" + `SELECT
         count(*) FILTER (WHERE created_at > now() - interval '7 days') AS created,
         count(*) FILTER (WHERE completed_at > now() - interval '7 days') AS completed
       FROM tasks` + "`" + `
    );
  },
};

scheduler.register(weeklyActivityReport);
`

const backupJobsTemplate = `import { exec } from 'child_process';
import { promisify } from 'util';
import { ScheduledJob } from './types';
import { scheduler } from './scheduler';

const run = promisify(exec);

export const nightlyBackup: ScheduledJob = {
  name: 'nightly_backup',
  cadence: '0 2 * * *',
  description: 'Dump the database to the backup directory',
  handler: async () => {
    const target = ` + "`" + `backups/db_${new Date().toISOString().slice(0, 10)}.sql.gz` + "`" + `;
    await run(` + "`" + `pg_dump "$DATABASE_URL" | gzip > ${target}` + "`" + `);
  },
};

scheduler.register(nightlyBackup);
`
