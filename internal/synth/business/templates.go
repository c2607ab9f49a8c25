package business

// Fixed workflow templates. Each artifact is self-contained: it carries its
// own type definitions and touches other services only through imports.

const taskLifecycleTemplate = `import { pool } from '../config/database';
import { notifyUser, notifyStakeholders } from './notificationService';

export type TaskStatus = 'pending' | 'in_progress' | 'completed' | 'cancelled';
export type TaskPriority = 'low' | 'medium' | 'high' | 'urgent';

export interface Task {
  id: string;
  title: string;
  description: string | null;
  status: TaskStatus;
  priority: TaskPriority;
  creatorId: string;
  assigneeId: string | null;
  parentTaskId: string | null;
  dueDate: Date | null;
  completedAt: Date | null;
}

export class TaskLifecycleError extends Error {}

export async function createTask(
  creatorId: string,
  input: { title: string; description?: string; priority?: TaskPriority; dueDate?: Date }
): Promise<Task> {
  const result = await pool.query(
    ` + "`" + `INSERT INTO tasks (title, description, priority, creator_id, due_date)
     VALUES ($1, $2, $3, $4, $5) RETURNING *` + "`" + `,
    [input.title, input.description ?? null, input.priority ?? 'medium', creatorId, input.dueDate ?? null]
  );
  const task = mapRow(result.rows[0]);
  await audit(creatorId, 'task', task.id, 'created');
  return task;
}

export async function assignTask(actorId: string, taskId: string, assigneeId: string): Promise<Task> {
  const result = await pool.query(
    'UPDATE tasks SET assignee_id = $1, updated_at = now() WHERE id = $2 RETURNING *',
    [assigneeId, taskId]
  );
  if (result.rowCount === 0) throw new TaskLifecycleError('task not found');
  const task = mapRow(result.rows[0]);
  await notifyUser(assigneeId, 'task_assigned', { taskId, assignedBy: actorId });
  await audit(actorId, 'task', taskId, 'assigned');
  return task;
}

export async function completeTask(actorId: string, taskId: string): Promise<Task> {
  // A task cannot be completed while any of its subtasks are incomplete.
  const incomplete = await pool.query(
    "SELECT count(*) AS n FROM tasks WHERE parent_task_id = $1 AND status <> 'completed'",
    [taskId]
  );
  if (Number(incomplete.rows[0].n) > 0) {
    throw new TaskLifecycleError('cannot complete task with incomplete subtasks');
  }
  const result = await pool.query(
    "UPDATE tasks SET status = 'completed', completed_at = now() WHERE id = $1 RETURNING *",
    [taskId]
  );
  if (result.rowCount === 0) throw new TaskLifecycleError('task not found');
  const task = mapRow(result.rows[0]);
  await notifyUser(task.creatorId, 'task_completed', { taskId, completedBy: actorId });
  await audit(actorId, 'task', taskId, 'completed');
  return task;
}

export async function escalateTask(actorId: string, taskId: string, priority: TaskPriority): Promise<Task> {
  const result = await pool.query(
    'UPDATE tasks SET priority = $1, updated_at = now() WHERE id = $2 RETURNING *',
    [priority, taskId]
  );
  if (result.rowCount === 0) throw new TaskLifecycleError('task not found');
  const task = mapRow(result.rows[0]);
  // Escalation to the highest tier automatically notifies stakeholders.
  if (priority === 'urgent') {
    await notifyStakeholders(taskId, 'task_escalated', { taskId, escalatedBy: actorId });
  }
  await audit(actorId, 'task', taskId, 'escalated');
  return task;
}

export async function deleteTask(actorId: string, taskId: string): Promise<void> {
  const found = await pool.query('SELECT creator_id FROM tasks WHERE id = $1', [taskId]);
  if (found.rowCount === 0) throw new TaskLifecycleError('task not found');
  // Only the creator may delete a task.
  if (found.rows[0].creator_id !== actorId) {
    throw new TaskLifecycleError('only the task creator may delete it');
  }
  // And only if no other task depends on it.
  const dependents = await pool.query(
    'SELECT count(*) AS n FROM tasks WHERE parent_task_id = $1',
    [taskId]
  );
  if (Number(dependents.rows[0].n) > 0) {
    throw new TaskLifecycleError('cannot delete a task other tasks depend on');
  }
  await pool.query('DELETE FROM tasks WHERE id = $1', [taskId]);
  await audit(actorId, 'task', taskId, 'deleted');
}

async function audit(userId: string, entityType: string, entityId: string, action: string): Promise<void> {
  await pool.query(
    'INSERT INTO audit_logs (user_id, entity_type, entity_id, action) VALUES ($1, $2, $3, $4)',
    [userId, entityType, entityId, action]
  );
}

function mapRow(row: any): Task {
  return {
    id: row.id,
    title: row.title,
    description: row.description,
    status: row.status,
    priority: row.priority,
    creatorId: row.creator_id,
    assigneeId: row.assignee_id,
    parentTaskId: row.parent_task_id,
    dueDate: row.due_date,
    completedAt: row.completed_at,
  };
}
`

const sharingTemplate = `import { pool } from '../config/database';
import { notifyUser } from './notificationService';

// Three-tier permission hierarchy. Higher values include lower ones.
export type SharePermission = 'view' | 'comment' | 'edit';

const permissionRank: Record<SharePermission, number> = {
  view: 1,
  comment: 2,
  edit: 3,
};

export class SharingError extends Error {}

export async function shareTask(
  ownerId: string,
  taskId: string,
  targetUserId: string,
  permission: SharePermission
): Promise<void> {
  const task = await pool.query('SELECT creator_id FROM tasks WHERE id = $1', [taskId]);
  if (task.rowCount === 0) throw new SharingError('task not found');
  if (task.rows[0].creator_id !== ownerId) {
    throw new SharingError('only the task owner may share it');
  }
  await pool.query(
    ` + "`" + `INSERT INTO task_shares (task_id, user_id, permission) VALUES ($1, $2, $3)
     ON CONFLICT (task_id, user_id) DO UPDATE SET permission = $3` + "`" + `,
    [taskId, targetUserId, permission]
  );
  await notifyUser(targetUserId, 'task_shared', { taskId, sharedBy: ownerId, permission });
}

export async function revokeShare(actorId: string, taskId: string, targetUserId: string): Promise<void> {
  const task = await pool.query('SELECT creator_id FROM tasks WHERE id = $1', [taskId]);
  if (task.rowCount === 0) throw new SharingError('task not found');
  // Revocation is owner-only.
  if (task.rows[0].creator_id !== actorId) {
    throw new SharingError('only the task owner may revoke sharing');
  }
  await pool.query('DELETE FROM task_shares WHERE task_id = $1 AND user_id = $2', [taskId, targetUserId]);
}

export async function hasPermission(
  userId: string,
  taskId: string,
  required: SharePermission
): Promise<boolean> {
  const task = await pool.query('SELECT creator_id, assignee_id FROM tasks WHERE id = $1', [taskId]);
  if (task.rowCount === 0) return false;
  // The owner and the assignee implicitly hold edit.
  if (task.rows[0].creator_id === userId || task.rows[0].assignee_id === userId) {
    return true;
  }
  const share = await pool.query(
    'SELECT permission FROM task_shares WHERE task_id = $1 AND user_id = $2',
    [taskId, userId]
  );
  if (share.rowCount === 0) return false;
  const granted = share.rows[0].permission as SharePermission;
  return permissionRank[granted] >= permissionRank[required];
}

export async function requirePermission(
  userId: string,
  taskId: string,
  required: SharePermission
): Promise<void> {
  if (!(await hasPermission(userId, taskId, required))) {
    throw new SharingError(` + "`" + `missing ${required} permission on task ${taskId}` + "`" + `);
  }
}
`

const notificationTemplate = `import { pool } from '../config/database';
import { enqueue } from '../utils/queue';

export type NotificationType =
  | 'task_assigned'
  | 'task_completed'
  | 'task_escalated'
  | 'task_shared'
  | 'comment_added'
  | 'attachment_uploaded';

export interface Notification {
  id: string;
  userId: string;
  type: NotificationType;
  payload: Record<string, unknown>;
  isRead: boolean;
}

// Creation both persists the record and enqueues an async delivery job; the
// two steps share one code path so delivery can never drift from storage.
export async function notifyUser(
  userId: string,
  type: NotificationType,
  payload: Record<string, unknown>
): Promise<Notification> {
  const result = await pool.query(
    'INSERT INTO notifications (user_id, type, payload) VALUES ($1, $2, $3) RETURNING *',
    [userId, type, JSON.stringify(payload)]
  );
  const notification = mapRow(result.rows[0]);
  await enqueue('notification_delivery', { notificationId: notification.id, userId, type });
  return notification;
}

// Stakeholders are the creator, the assignee and everyone the task is shared
// with; duplicates are collapsed before dispatch.
export async function notifyStakeholders(
  taskId: string,
  type: NotificationType,
  payload: Record<string, unknown>
): Promise<void> {
  const result = await pool.query(
    ` + "`" + `SELECT creator_id AS user_id FROM tasks WHERE id = $1
     UNION SELECT assignee_id FROM tasks WHERE id = $1 AND assignee_id IS NOT NULL
     UNION SELECT user_id FROM task_shares WHERE task_id = $1` + "`" + `,
    [taskId]
  );
  for (const row of result.rows) {
    await notifyUser(row.user_id, type, payload);
  }
}

export async function markRead(userId: string, notificationId: string): Promise<void> {
  await pool.query(
    'UPDATE notifications SET is_read = true, read_at = now() WHERE id = $1 AND user_id = $2',
    [notificationId, userId]
  );
}

function mapRow(row: any): Notification {
  return {
    id: row.id,
    userId: row.user_id,
    type: row.type,
    payload: typeof row.payload === 'string' ? JSON.parse(row.payload) : row.payload,
    isRead: row.is_read,
  };
}
`

const commentTemplate = `import { pool } from '../config/database';
import { notifyUser } from './notificationService';

export interface Comment {
  id: string;
  taskId: string;
  userId: string;
  parentCommentId: string | null;
  content: string;
  isDeleted: boolean;
}

export class CommentError extends Error {}

export async function addComment(
  userId: string,
  taskId: string,
  content: string,
  parentCommentId?: string
): Promise<Comment> {
  if (!content.trim()) throw new CommentError('comment content is empty');
  if (parentCommentId) {
    const parent = await pool.query(
      'SELECT task_id FROM comments WHERE id = $1 AND is_deleted = false',
      [parentCommentId]
    );
    if (parent.rowCount === 0) throw new CommentError('parent comment not found');
    if (parent.rows[0].task_id !== taskId) {
      throw new CommentError('parent comment belongs to another task');
    }
  }
  const result = await pool.query(
    ` + "`" + `INSERT INTO comments (task_id, user_id, parent_comment_id, content)
     VALUES ($1, $2, $3, $4) RETURNING *` + "`" + `,
    [taskId, userId, parentCommentId ?? null, content]
  );
  const task = await pool.query('SELECT creator_id FROM tasks WHERE id = $1', [taskId]);
  if (task.rowCount > 0 && task.rows[0].creator_id !== userId) {
    await notifyUser(task.rows[0].creator_id, 'comment_added', { taskId, commentBy: userId });
  }
  return mapRow(result.rows[0]);
}

export async function deleteComment(userId: string, commentId: string): Promise<void> {
  const found = await pool.query('SELECT user_id FROM comments WHERE id = $1', [commentId]);
  if (found.rowCount === 0) throw new CommentError('comment not found');
  if (found.rows[0].user_id !== userId) {
    throw new CommentError('only the comment author may delete it');
  }
  const replies = await pool.query(
    'SELECT count(*) AS n FROM comments WHERE parent_comment_id = $1',
    [commentId]
  );
  if (Number(replies.rows[0].n) > 0) {
    // Keep the thread readable: soft-delete when replies exist.
    await pool.query(
      "UPDATE comments SET is_deleted = true, content = '[deleted]' WHERE id = $1",
      [commentId]
    );
  } else {
    await pool.query('DELETE FROM comments WHERE id = $1', [commentId]);
  }
}

export async function getThread(taskId: string): Promise<Comment[]> {
  const result = await pool.query(
    'SELECT * FROM comments WHERE task_id = $1 ORDER BY created_at ASC',
    [taskId]
  );
  return result.rows.map(mapRow);
}

function mapRow(row: any): Comment {
  return {
    id: row.id,
    taskId: row.task_id,
    userId: row.user_id,
    parentCommentId: row.parent_comment_id,
    content: row.content,
    isDeleted: row.is_deleted,
  };
}
`

const attachmentTemplate = `import { pool } from '../config/database';
import { enqueue } from '../utils/queue';
import * as fs from 'fs/promises';
import * as path from 'path';

export interface Attachment {
  id: string;
  taskId: string;
  uploaderId: string;
  filename: string;
  storagePath: string;
  mimeType: string;
  sizeBytes: number;
}

export class AttachmentError extends Error {}

const MAX_SIZE_BYTES = 25 * 1024 * 1024;

const ALLOWED_MIME_TYPES = new Set([
  'image/png',
  'image/jpeg',
  'image/gif',
  'application/pdf',
  'text/plain',
  'text/csv',
  'application/zip',
]);

const STORAGE_ROOT = process.env.ATTACHMENT_STORAGE_ROOT ?? 'storage/attachments';

export async function uploadAttachment(
  uploaderId: string,
  taskId: string,
  filename: string,
  mimeType: string,
  data: Buffer
): Promise<Attachment> {
  if (data.length > MAX_SIZE_BYTES) {
    throw new AttachmentError('attachment exceeds maximum size');
  }
  if (!ALLOWED_MIME_TYPES.has(mimeType)) {
    throw new AttachmentError(` + "`" + `mime type ${mimeType} is not allowed` + "`" + `);
  }

  const safeName = path.basename(filename);
  const storagePath = path.join(STORAGE_ROOT, taskId, ` + "`" + `${Date.now()}_${safeName}` + "`" + `);
  await fs.mkdir(path.dirname(storagePath), { recursive: true });
  await fs.writeFile(storagePath, data);

  const result = await pool.query(
    ` + "`" + `INSERT INTO attachments (task_id, uploader_id, filename, storage_path, mime_type, size_bytes)
     VALUES ($1, $2, $3, $4, $5, $6) RETURNING *` + "`" + `,
    [taskId, uploaderId, safeName, storagePath, mimeType, data.length]
  );
  const attachment = mapRow(result.rows[0]);
  await enqueue('attachment_postprocess', { attachmentId: attachment.id, mimeType });
  return attachment;
}

export async function deleteAttachment(actorId: string, attachmentId: string): Promise<void> {
  const found = await pool.query(
    'SELECT uploader_id, storage_path FROM attachments WHERE id = $1',
    [attachmentId]
  );
  if (found.rowCount === 0) throw new AttachmentError('attachment not found');
  if (found.rows[0].uploader_id !== actorId) {
    throw new AttachmentError('only the uploader may delete an attachment');
  }
  await pool.query('DELETE FROM attachments WHERE id = $1', [attachmentId]);
  await fs.rm(found.rows[0].storage_path, { force: true });
}

function mapRow(row: any): Attachment {
  return {
    id: row.id,
    taskId: row.task_id,
    uploaderId: row.uploader_id,
    filename: row.filename,
    storagePath: row.storage_path,
    mimeType: row.mime_type,
    sizeBytes: Number(row.size_bytes),
  };
}
`
