package frontend

const loginFormTemplate = `import { useState, FormEvent } from 'react';

interface Props {
  onLogin: (email: string, password: string) => Promise<void>;
}

export function LoginForm({ onLogin }: Props) {
  const [email, setEmail] = useState('');
  const [password, setPassword] = useState('');
  const [error, setError] = useState<string | null>(null);
  const [submitting, setSubmitting] = useState(false);

  async function handleSubmit(event: FormEvent) {
    event.preventDefault();
    setError(null);
    setSubmitting(true);
    try {
      await onLogin(email, password);
    } catch (err) {
      setError(err instanceof Error ? err.message : 'Login failed');
    } finally {
      setSubmitting(false);
    }
  }

  return (
    <form onSubmit={handleSubmit}>
      <label>
        Email
        <input type="email" value={email} onChange={(e) => setEmail(e.target.value)} required />
      </label>
      <label>
        Password
        <input type="password" value={password} onChange={(e) => setPassword(e.target.value)} required />
      </label>
      {error && <p role="alert">{error}</p>}
      <button type="submit" disabled={submitting}>
        {submitting ? 'Signing in…' : 'Sign in'}
      </button>
    </form>
  );
}
`

const taskListTemplate = `import { useEffect, useState } from 'react';

export interface TaskItem {
  id: string;
  title: string;
  status: 'pending' | 'in_progress' | 'completed' | 'cancelled';
  priority: 'low' | 'medium' | 'high' | 'urgent';
  dueDate: string | null;
}

interface Props {
  fetchTasks: () => Promise<TaskItem[]>;
  onSelect?: (task: TaskItem) => void;
}

export function TaskList({ fetchTasks, onSelect }: Props) {
  const [tasks, setTasks] = useState<TaskItem[]>([]);
  const [loading, setLoading] = useState(true);

  useEffect(() => {
    fetchTasks()
      .then(setTasks)
      .finally(() => setLoading(false));
  }, [fetchTasks]);

  if (loading) return <p>Loading tasks…</p>;
  if (tasks.length === 0) return <p>No tasks yet.</p>;

  return (
    <ul>
      {tasks.map((task) => (
        <li key={task.id} onClick={() => onSelect?.(task)}>
          <span className={` + "`" + `priority-${task.priority}` + "`" + `}>{task.title}</span>
          <span>{task.status}</span>
          {task.dueDate && <time dateTime={task.dueDate}>{task.dueDate}</time>}
        </li>
      ))}
    </ul>
  );
}
`

const commentThreadTemplate = `import { useState } from 'react';

export interface CommentNode {
  id: string;
  author: string;
  content: string;
  isDeleted: boolean;
  replies: CommentNode[];
}

interface Props {
  comments: CommentNode[];
  onReply: (parentId: string, content: string) => Promise<void>;
}

export function CommentThread({ comments, onReply }: Props) {
  return (
    <div>
      {comments.map((comment) => (
        <CommentItem key={comment.id} comment={comment} onReply={onReply} />
      ))}
    </div>
  );
}

function CommentItem({ comment, onReply }: { comment: CommentNode; onReply: Props['onReply'] }) {
  const [draft, setDraft] = useState('');
  const [replying, setReplying] = useState(false);

  async function submit() {
    await onReply(comment.id, draft);
    setDraft('');
    setReplying(false);
  }

  return (
    <article>
      <header>{comment.author}</header>
      <p>{comment.isDeleted ? '[deleted]' : comment.content}</p>
      {!comment.isDeleted && (
        <button onClick={() => setReplying(!replying)}>Reply</button>
      )}
      {replying && (
        <div>
          <textarea value={draft} onChange={(e) => setDraft(e.target.value)} />
          <button onClick={submit} disabled={!draft.trim()}>Post</button>
        </div>
      )}
      <div style={{ marginLeft: '1.5rem' }}>
        {comment.replies.map((reply) => (
          <CommentItem key={reply.id} comment={reply} onReply={onReply} />
        ))}
      </div>
    </article>
  );
}
`

const notificationBellTemplate = `import { useEffect, useState } from 'react';

export interface NotificationItem {
  id: string;
  type: string;
  isRead: boolean;
  createdAt: string;
}

interface Props {
  fetchNotifications: () => Promise<NotificationItem[]>;
  markRead: (id: string) => Promise<void>;
  pollIntervalMillis?: number;
}

export function NotificationBell({ fetchNotifications, markRead, pollIntervalMillis = 30_000 }: Props) {
  const [items, setItems] = useState<NotificationItem[]>([]);
  const [open, setOpen] = useState(false);

  useEffect(() => {
    const load = () => fetchNotifications().then(setItems);
    load();
    const timer = setInterval(load, pollIntervalMillis);
    return () => clearInterval(timer);
  }, [fetchNotifications, pollIntervalMillis]);

  const unread = items.filter((n) => !n.isRead).length;

  async function handleClick(item: NotificationItem) {
    if (!item.isRead) {
      await markRead(item.id);
      setItems((prev) => prev.map((n) => (n.id === item.id ? { ...n, isRead: true } : n)));
    }
  }

  return (
    <div>
      <button onClick={() => setOpen(!open)} aria-label="Notifications">
        🔔{unread > 0 && <span>{unread}</span>}
      </button>
      {open && (
        <ul>
          {items.map((item) => (
            <li key={item.id} onClick={() => handleClick(item)}>
              {item.type} — {item.createdAt}
            </li>
          ))}
        </ul>
      )}
    </div>
  );
}
`
